package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/midnightshuttle/storefront-core/internal/catalog"
	"github.com/midnightshuttle/storefront-core/internal/options"
	pkgerrors "github.com/midnightshuttle/storefront-core/pkg/errors"
	"github.com/midnightshuttle/storefront-core/pkg/kvstore"
	"github.com/midnightshuttle/storefront-core/pkg/logger"
	"github.com/midnightshuttle/storefront-core/pkg/metrics"
	"github.com/shopspring/decimal"
)

// Snapshot is the persisted cart state. The key layout matches what the web
// storefront already writes, so both clients can share one stored cart.
type Snapshot struct {
	Items      []LineItem `json:"items"`
	OrderNotes string     `json:"orderNotes"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Service owns the cart for one storefront instance. Every mutation is
// written through to storage synchronously; a failed write is logged by the
// kvstore facade and never rolls back the in-memory change.
//
// The service is not safe for concurrent use. It is owned by a single UI
// task, mirroring the event-driven model it was extracted from.
type Service struct {
	kv      *kvstore.Store
	cartKey string
	logg    *logger.Logger
	mets    *metrics.StorefrontMetrics

	items      []LineItem
	orderNotes string
	isOpen     bool
}

// NewService builds a cart service and restores the persisted snapshot, if
// any. Metrics may be nil.
func NewService(ctx context.Context, kv *kvstore.Store, cartKey string, logg *logger.Logger, mets *metrics.StorefrontMetrics) (*Service, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv store required")
	}
	if cartKey == "" {
		return nil, fmt.Errorf("cart storage key required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}

	s := &Service{kv: kv, cartKey: cartKey, logg: logg, mets: mets}
	s.loadFromStorage(ctx)
	return s, nil
}

// AddItem prices the configuration with the product's own strategies and
// either merges it into the line with the same signature or appends a new
// line. Merging only sums quantities; the existing line's price stays as
// priced at its own add time.
func (s *Service) AddItem(ctx context.Context, product *catalog.Product, quantity int, selections options.Selections, notes string) error {
	if product == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	signature := computeSignature(product.ID, selections, notes)
	for i := range s.items {
		if s.items[i].Signature == signature {
			s.items[i].Quantity += quantity
			s.mets.IncCartMutation("add")
			s.saveToStorage(ctx)
			return nil
		}
	}

	s.items = append(s.items, buildLineItem(product, quantity, selections, notes))
	s.mets.IncCartMutation("add")
	s.saveToStorage(ctx)
	return nil
}

// RemoveItem deletes the line with the given id; unknown ids are a no-op.
func (s *Service) RemoveItem(ctx context.Context, id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mets.IncCartMutation("remove")
	s.saveToStorage(ctx)
}

// ReplaceItem substitutes the line at oldID's position with a freshly
// priced line. This is the edit flow: the customer is changing one specific
// line, so no merge-by-signature happens and display order is preserved.
func (s *Service) ReplaceItem(ctx context.Context, oldID string, product *catalog.Product, quantity int, selections options.Selections, notes string) error {
	if product == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	for i := range s.items {
		if s.items[i].ID == oldID {
			item := buildLineItem(product, quantity, selections, notes)
			s.items[i] = item
			s.mets.IncCartMutation("replace")
			s.saveToStorage(ctx)
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
}

// UpdateQuantity sets the quantity of the line with the given id. A
// quantity of zero or less removes the line. The unit price is never
// recomputed here.
func (s *Service) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, id)
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.mets.IncCartMutation("update_quantity")
			s.saveToStorage(ctx)
			return
		}
	}
}

// Clear empties the cart and resets the order notes.
func (s *Service) Clear(ctx context.Context) {
	s.items = nil
	s.orderNotes = ""
	s.mets.IncCartMutation("clear")
	s.saveToStorage(ctx)
}

// Items returns a copy of the cart lines in display order.
func (s *Service) Items() []LineItem {
	return append([]LineItem(nil), s.items...)
}

// ItemCount returns the number of distinct lines, not the summed quantities.
func (s *Service) ItemCount() int {
	return len(s.items)
}

// IsEmpty reports whether the cart has no lines.
func (s *Service) IsEmpty() bool {
	return len(s.items) == 0
}

// Subtotal returns the sum of unit price times quantity over all lines.
func (s *Service) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// OrderNotes returns the order-level notes.
func (s *Service) OrderNotes() string {
	return s.orderNotes
}

// SetOrderNotes replaces the order-level notes and persists.
func (s *Service) SetOrderNotes(ctx context.Context, notes string) {
	s.orderNotes = notes
	s.saveToStorage(ctx)
}

// IsOpen reports whether the cart drawer is showing. Drawer state is UI
// only and not part of the persisted snapshot.
func (s *Service) IsOpen() bool {
	return s.isOpen
}

// ToggleDrawer flips the drawer state.
func (s *Service) ToggleDrawer() {
	s.isOpen = !s.isOpen
}

// OpenDrawer shows the drawer.
func (s *Service) OpenDrawer() {
	s.isOpen = true
}

// CloseDrawer hides the drawer.
func (s *Service) CloseDrawer() {
	s.isOpen = false
}

func (s *Service) saveToStorage(ctx context.Context) {
	s.kv.Set(ctx, s.cartKey, Snapshot{
		Items:      s.items,
		OrderNotes: s.orderNotes,
		UpdatedAt:  time.Now().UTC(),
	})
}

func (s *Service) loadFromStorage(ctx context.Context) {
	var snap Snapshot
	if !s.kv.Get(ctx, s.cartKey, &snap) {
		return
	}
	s.items = snap.Items
	s.orderNotes = snap.OrderNotes
}
