package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midnightshuttle/storefront-core/internal/catalog"
	"github.com/midnightshuttle/storefront-core/internal/options"
	"github.com/shopspring/decimal"
)

// LineItem is one row of the cart: a product configuration and its
// quantity. It snapshots the display fields it needs at add time instead of
// holding a live product reference, so later catalog reloads cannot
// silently change a cart the customer already reviewed.
type LineItem struct {
	ID              string             `json:"id"`
	Signature       string             `json:"signature"`
	ProductID       string             `json:"productId"`
	ProductName     string             `json:"productName"`
	ProductImage    string             `json:"productImage"`
	UnitPrice       decimal.Decimal    `json:"price"`
	Quantity        int                `json:"quantity"`
	SelectedOptions options.Selections `json:"selectedOptions"`
	Notes           string             `json:"notes"`
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// newLineID returns a time-prefixed identifier. The nanosecond prefix keeps
// ids roughly generation-ordered; the uuid fragment keeps them unique when
// two lines are created within the same tick.
func newLineID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
}

func buildLineItem(product *catalog.Product, quantity int, selections options.Selections, notes string) LineItem {
	return LineItem{
		ID:              newLineID(),
		Signature:       computeSignature(product.ID, selections, notes),
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductImage:    product.Image,
		UnitPrice:       catalog.PriceWithOptions(product, selections),
		Quantity:        quantity,
		SelectedOptions: selections,
		Notes:           notes,
	}
}
