package options

import "github.com/shopspring/decimal"

// Strategy is the validation, pricing and initial-value policy bound to one
// option group's cardinality shape. Implementations are immutable and safe
// to share across products with identical configuration.
type Strategy interface {
	// Name returns the option group name, unique per product.
	Name() string
	// Choices returns the group's choices in declaration order.
	Choices() []Choice
	// RenderKind reports the control family the UI should render.
	RenderKind() RenderKind
	// Validate checks a selection against the group's cardinality rule.
	Validate(selected []string) Result
	// InitialValue returns the selection pre-filled when a product opens.
	InitialValue() []string
	// PriceOf returns the surcharge the selection adds to the base price.
	PriceOf(selected []string) decimal.Decimal
}

// group carries the shared configuration all strategy variants hold.
type group struct {
	cfg GroupConfig
}

func (g group) Name() string {
	return g.cfg.Name
}

func (g group) Choices() []Choice {
	return g.cfg.Choices
}

func (g group) findChoice(value string) (Choice, bool) {
	for _, c := range g.cfg.Choices {
		if c.Value == value {
			return c, true
		}
	}
	return Choice{}, false
}

func (g group) allKnown(selected []string) bool {
	for _, value := range selected {
		if _, ok := g.findChoice(value); !ok {
			return false
		}
	}
	return true
}

// priceOfSingle prices the first selected value, zero when nothing or an
// unknown value is selected.
func (g group) priceOfSingle(selected []string) decimal.Decimal {
	if len(selected) == 0 {
		return decimal.Zero
	}
	choice, ok := g.findChoice(selected[0])
	if !ok {
		return decimal.Zero
	}
	return choice.Price
}
