package options

import (
	"testing"

	"github.com/shopspring/decimal"
)

func breadGroup() GroupConfig {
	return GroupConfig{
		Name:     "TIPO DE PAN",
		Min:      1,
		Max:      1,
		Required: true,
		Kind:     KindStandard,
		Choices: []Choice{
			{Label: "Pan brioche", Value: "PAN-01", Price: decimal.Zero},
			{Label: "Pan artesanal", Value: "PAN-02", Price: decimal.NewFromInt(2000)},
		},
	}
}

func sidesGroup(required bool) GroupConfig {
	return GroupConfig{
		Name:     "ACOMPANANTE",
		Min:      1,
		Max:      3,
		Required: required,
		Kind:     KindStandard,
		Choices: []Choice{
			{Label: "Papas", Value: "AC-01", Price: decimal.NewFromInt(3000)},
			{Label: "Yuca", Value: "AC-02", Price: decimal.NewFromInt(3500)},
			{Label: "Ensalada", Value: "AC-03", Price: decimal.Zero},
			{Label: "Patacones", Value: "AC-04", Price: decimal.NewFromInt(4000)},
			{Label: "Arroz", Value: "AC-05", Price: decimal.NewFromInt(2500)},
		},
	}
}

func TestRadioRequired(t *testing.T) {
	t.Parallel()

	s := newRadioRequired(breadGroup())

	if s.RenderKind() != RenderSingleChoice {
		t.Fatalf("unexpected render kind %s", s.RenderKind())
	}

	initial := s.InitialValue()
	if len(initial) != 1 || initial[0] != "PAN-01" {
		t.Fatalf("expected first choice pre-selected, got %v", initial)
	}
	if res := s.Validate(initial); !res.Valid {
		t.Fatalf("initial value must validate, got %q", res.Message)
	}

	if res := s.Validate(nil); res.Valid {
		t.Fatal("empty selection must fail")
	}
	if res := s.Validate([]string{"PAN-99"}); res.Valid {
		t.Fatal("unknown choice must fail")
	}
	if res := s.Validate([]string{"PAN-01", "PAN-02"}); res.Valid {
		t.Fatal("two selections on a radio group must fail")
	}

	if got := s.PriceOf([]string{"PAN-02"}); !got.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("unexpected price %s", got)
	}
	if got := s.PriceOf(nil); !got.IsZero() {
		t.Fatalf("empty selection must price zero, got %s", got)
	}
}

func TestRadioOptional(t *testing.T) {
	t.Parallel()

	cfg := breadGroup()
	cfg.Required = false
	s := newRadioOptional(cfg)

	if s.InitialValue() != nil {
		t.Fatal("optional radio must not pre-select")
	}
	if res := s.Validate(nil); !res.Valid {
		t.Fatal("empty selection must be valid")
	}
	if res := s.Validate([]string{"PAN-99"}); res.Valid {
		t.Fatal("unknown choice must fail")
	}
	if got := s.PriceOf([]string{"PAN-02"}); !got.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("unexpected price %s", got)
	}
	if got := s.PriceOf(nil); !got.IsZero() {
		t.Fatalf("empty selection must price zero, got %s", got)
	}
}

func TestCheckboxMulti(t *testing.T) {
	t.Parallel()

	required := newCheckboxMulti(sidesGroup(true))
	optional := newCheckboxMulti(sidesGroup(false))

	if required.RenderKind() != RenderMultiChoice {
		t.Fatalf("unexpected render kind %s", required.RenderKind())
	}
	if required.InitialValue() != nil {
		t.Fatal("checkbox group must start empty")
	}

	if res := required.Validate(nil); res.Valid {
		t.Fatal("required group rejects empty selection")
	}
	if res := optional.Validate(nil); !res.Valid {
		t.Fatalf("optional group accepts empty selection, got %q", res.Message)
	}
	if res := required.Validate([]string{"AC-01", "AC-02", "AC-03", "AC-04"}); res.Valid {
		t.Fatal("four selections exceed max=3")
	}
	if res := required.Validate([]string{"AC-99"}); res.Valid {
		t.Fatal("unknown value must fail")
	}
	if res := required.Validate([]string{"AC-01", "AC-04"}); !res.Valid {
		t.Fatalf("two known selections within range must pass, got %q", res.Message)
	}

	price := required.PriceOf([]string{"AC-01", "AC-02", "AC-99"})
	if !price.Equal(decimal.NewFromInt(6500)) {
		t.Fatalf("expected 6500 (unknown values free), got %s", price)
	}
}

func TestCheckboxMultiMinBelowThreshold(t *testing.T) {
	t.Parallel()

	cfg := sidesGroup(false)
	cfg.Min = 2
	s := newCheckboxMulti(cfg)

	if res := s.Validate([]string{"AC-01"}); res.Valid {
		t.Fatal("one selection below min=2 must fail")
	}
	if res := s.Validate([]string{"AC-01", "AC-02"}); !res.Valid {
		t.Fatalf("selection at min must pass, got %q", res.Message)
	}
}

func TestRemoveIngredient(t *testing.T) {
	t.Parallel()

	s := newRemoveIngredient(GroupConfig{
		Name:     "Personaliza tu pedido",
		Required: true, // forced back to optional
		Min:      3,
		Max:      1,
		Kind:     KindRemoveIngredient,
		Choices: []Choice{
			{Label: "Sin Cebolla", Value: "ING-01", Price: decimal.NewFromInt(999)},
			{Label: "Sin Tomate", Value: "ING-02", Price: decimal.Zero},
		},
	})

	subsets := [][]string{nil, {}, {"ING-01"}, {"ING-01", "ING-02"}, {"whatever"}}
	for _, subset := range subsets {
		if res := s.Validate(subset); !res.Valid {
			t.Fatalf("subset %v must be valid, got %q", subset, res.Message)
		}
		if got := s.PriceOf(subset); !got.IsZero() {
			t.Fatalf("removing ingredients is free, got %s for %v", got, subset)
		}
	}
	if s.InitialValue() != nil {
		t.Fatal("remove-ingredient group must start empty")
	}
	if s.RenderKind() != RenderMultiChoice {
		t.Fatalf("unexpected render kind %s", s.RenderKind())
	}
}
