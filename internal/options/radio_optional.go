package options

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RadioOptional handles groups where zero or one choice may be picked
// (min=1, max=1, not required). Nothing is pre-selected.
type RadioOptional struct {
	group
}

func newRadioOptional(cfg GroupConfig) *RadioOptional {
	return &RadioOptional{group{cfg: cfg}}
}

func (s *RadioOptional) RenderKind() RenderKind {
	return RenderSingleChoice
}

func (s *RadioOptional) Validate(selected []string) Result {
	if len(selected) == 0 {
		return valid()
	}
	if len(selected) > 1 {
		return invalid(fmt.Sprintf("Solo puedes seleccionar una opción en %q", s.cfg.Name))
	}
	if _, ok := s.findChoice(selected[0]); !ok {
		return invalid(fmt.Sprintf("La opción seleccionada en %q no es válida", s.cfg.Name))
	}
	return valid()
}

func (s *RadioOptional) InitialValue() []string {
	return nil
}

func (s *RadioOptional) PriceOf(selected []string) decimal.Decimal {
	return s.priceOfSingle(selected)
}
