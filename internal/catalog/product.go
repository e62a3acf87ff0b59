package catalog

import (
	"github.com/midnightshuttle/storefront-core/internal/options"
	"github.com/shopspring/decimal"
)

// Product is the immutable domain entity built from a raw catalog record.
// Blocked records never become products. Strategy order follows the combo
// declaration order, with the remove-ingredient group appended last; the UI
// and the initial-price computation both rely on that order.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Area        string
	BasePrice   decimal.Decimal
	Image       string
	Strategies  []options.Strategy
}

// HasOptions reports whether the product carries any option group.
func (p *Product) HasOptions() bool {
	return len(p.Strategies) > 0
}
