package options

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RadioRequired handles groups where exactly one choice must be picked
// (min=1, max=1, required). The first choice is pre-selected.
type RadioRequired struct {
	group
}

func newRadioRequired(cfg GroupConfig) *RadioRequired {
	return &RadioRequired{group{cfg: cfg}}
}

func (s *RadioRequired) RenderKind() RenderKind {
	return RenderSingleChoice
}

func (s *RadioRequired) Validate(selected []string) Result {
	if len(selected) == 0 {
		return invalid(fmt.Sprintf("Debes seleccionar una opción en %q", s.cfg.Name))
	}
	if len(selected) > 1 {
		return invalid(fmt.Sprintf("Solo puedes seleccionar una opción en %q", s.cfg.Name))
	}
	if _, ok := s.findChoice(selected[0]); !ok {
		return invalid(fmt.Sprintf("La opción seleccionada en %q no es válida", s.cfg.Name))
	}
	return valid()
}

func (s *RadioRequired) InitialValue() []string {
	if len(s.cfg.Choices) == 0 {
		return nil
	}
	return []string{s.cfg.Choices[0].Value}
}

func (s *RadioRequired) PriceOf(selected []string) decimal.Decimal {
	return s.priceOfSingle(selected)
}
