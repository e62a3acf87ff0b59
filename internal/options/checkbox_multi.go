package options

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CheckboxMulti handles groups allowing several choices within [min, max]
// (max > 1). An empty selection is rejected only when the group is required.
type CheckboxMulti struct {
	group
}

func newCheckboxMulti(cfg GroupConfig) *CheckboxMulti {
	return &CheckboxMulti{group{cfg: cfg}}
}

func (s *CheckboxMulti) RenderKind() RenderKind {
	return RenderMultiChoice
}

func (s *CheckboxMulti) Validate(selected []string) Result {
	if s.cfg.Required && len(selected) == 0 {
		return invalid(fmt.Sprintf("Debes seleccionar al menos %d opción(es) en %q", s.cfg.Min, s.cfg.Name))
	}
	if len(selected) > 0 && len(selected) < s.cfg.Min {
		return invalid(fmt.Sprintf("Selecciona mínimo %d opción(es) en %q", s.cfg.Min, s.cfg.Name))
	}
	if len(selected) > s.cfg.Max {
		return invalid(fmt.Sprintf("Máximo %d opción(es) permitidas en %q", s.cfg.Max, s.cfg.Name))
	}
	if !s.allKnown(selected) {
		return invalid(fmt.Sprintf("Algunas opciones seleccionadas en %q no son válidas", s.cfg.Name))
	}
	return valid()
}

func (s *CheckboxMulti) InitialValue() []string {
	return nil
}

func (s *CheckboxMulti) PriceOf(selected []string) decimal.Decimal {
	total := decimal.Zero
	for _, value := range selected {
		if choice, ok := s.findChoice(value); ok {
			total = total.Add(choice.Price)
		}
	}
	return total
}
