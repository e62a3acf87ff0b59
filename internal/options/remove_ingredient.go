package options

import "github.com/shopspring/decimal"

// RemoveIngredient handles the synthesized "leave this out" group. Any
// subset is valid and removing ingredients never costs anything.
type RemoveIngredient struct {
	group
}

func newRemoveIngredient(cfg GroupConfig) *RemoveIngredient {
	// Always optional, whatever the feed claims.
	cfg.Required = false
	cfg.Min = 0
	if cfg.Max < len(cfg.Choices) {
		cfg.Max = len(cfg.Choices)
	}
	return &RemoveIngredient{group{cfg: cfg}}
}

func (s *RemoveIngredient) RenderKind() RenderKind {
	return RenderMultiChoice
}

func (s *RemoveIngredient) Validate(selected []string) Result {
	return valid()
}

func (s *RemoveIngredient) InitialValue() []string {
	return nil
}

func (s *RemoveIngredient) PriceOf(selected []string) decimal.Decimal {
	return decimal.Zero
}
