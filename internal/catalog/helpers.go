package catalog

import (
	"github.com/midnightshuttle/storefront-core/internal/options"
	"github.com/shopspring/decimal"
)

// ValidationSummary aggregates every strategy's verdict for one product.
// Errors keep strategy declaration order; validation never short-circuits so
// the customer sees everything that still needs fixing.
type ValidationSummary struct {
	Valid  bool
	Errors []string
	// FailedGroups names the option groups behind Errors, index-aligned.
	FailedGroups []string
}

// ValidateOptions runs every strategy of the product against the matching
// selection entry. Absent entries validate as empty selections.
func ValidateOptions(product *Product, selections options.Selections) ValidationSummary {
	if product == nil || len(product.Strategies) == 0 {
		return ValidationSummary{Valid: true}
	}

	var errs []string
	var failed []string
	for _, strategy := range product.Strategies {
		res := strategy.Validate(selections[strategy.Name()])
		if !res.Valid {
			errs = append(errs, res.Message)
			failed = append(failed, strategy.Name())
		}
	}

	return ValidationSummary{Valid: len(errs) == 0, Errors: errs, FailedGroups: failed}
}

// PriceWithOptions returns base price plus every strategy's surcharge for
// the matching selection entry. Strategies with no entry price an empty
// selection per their own rule; this never fails.
func PriceWithOptions(product *Product, selections options.Selections) decimal.Decimal {
	if product == nil {
		return decimal.Zero
	}

	total := product.BasePrice
	for _, strategy := range product.Strategies {
		total = total.Add(strategy.PriceOf(selections[strategy.Name()]))
	}
	return total
}

// InitialSelections builds a fresh selection map with every strategy's
// initial value. Callers own the returned map.
func InitialSelections(product *Product) options.Selections {
	if product == nil {
		return options.Selections{}
	}

	initial := make(options.Selections, len(product.Strategies))
	for _, strategy := range product.Strategies {
		initial[strategy.Name()] = strategy.InitialValue()
	}
	return initial
}
