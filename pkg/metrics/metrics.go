package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records counters for the ordering core. All methods are
// nil-safe so callers can run without a registry (tests, embedders that do
// not scrape).
type StorefrontMetrics struct {
	cartMutations      *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	strategyFallbacks  prometheus.Counter
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by action.",
	}, []string{"action"})
	validationFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "option_validation_failures_total",
		Help: "Option selections rejected by a strategy, by option group.",
	}, []string{"group"})
	strategyFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "option_strategy_fallbacks_total",
		Help: "Option groups that matched no classification rule and fell back to optional single choice.",
	})
	reg.MustRegister(cartMutations, validationFailures, strategyFallbacks)
	return &StorefrontMetrics{
		cartMutations:      cartMutations,
		validationFailures: validationFailures,
		strategyFallbacks:  strategyFallbacks,
	}
}

// IncCartMutation increments the mutation counter for the named action.
func (m *StorefrontMetrics) IncCartMutation(action string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(action).Inc()
}

// IncValidationFailure increments the rejection counter for an option group.
func (m *StorefrontMetrics) IncValidationFailure(group string) {
	if m == nil || m.validationFailures == nil {
		return
	}
	m.validationFailures.WithLabelValues(group).Inc()
}

// IncStrategyFallback increments the unclassified-configuration counter.
func (m *StorefrontMetrics) IncStrategyFallback() {
	if m == nil || m.strategyFallbacks == nil {
		return
	}
	m.strategyFallbacks.Inc()
}
