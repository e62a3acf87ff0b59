package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilSafety(t *testing.T) {
	t.Parallel()

	var m *StorefrontMetrics
	m.IncCartMutation("add")
	m.IncValidationFailure("TIPO DE PAN")
	m.IncStrategyFallback()

	empty := NewStorefrontMetrics(nil)
	empty.IncCartMutation("add")
	empty.IncStrategyFallback()
}

func TestCountersRegisterAndIncrement(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.IncCartMutation("add")
	m.IncCartMutation("add")
	m.IncCartMutation("remove")
	m.IncValidationFailure("ACOMPANANTE")
	m.IncStrategyFallback()

	if got := testutil.ToFloat64(m.cartMutations.WithLabelValues("add")); got != 2 {
		t.Fatalf("expected 2 add mutations, got %v", got)
	}
	if got := testutil.ToFloat64(m.cartMutations.WithLabelValues("remove")); got != 1 {
		t.Fatalf("expected 1 remove mutation, got %v", got)
	}
	if got := testutil.ToFloat64(m.validationFailures.WithLabelValues("ACOMPANANTE")); got != 1 {
		t.Fatalf("expected 1 validation failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.strategyFallbacks); got != 1 {
		t.Fatalf("expected 1 fallback, got %v", got)
	}
}
