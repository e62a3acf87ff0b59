package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/midnightshuttle/storefront-core/internal/options"
	"github.com/midnightshuttle/storefront-core/pkg/logger"
	"github.com/midnightshuttle/storefront-core/pkg/metrics"
	"github.com/midnightshuttle/storefront-core/pkg/text"
)

type rawLoader interface {
	GetAll(ctx context.Context) ([]RawProduct, error)
}

// Store owns the transformed product list for one storefront instance.
// Reads after a successful load return the same immutable Product values.
//
// Concurrent LoadProducts calls are not serialized: the last writer wins,
// which matches the single-load-at-startup usage this store is built for.
type Store struct {
	repo        rawLoader
	transformer *Transformer
	logg        *logger.Logger
	mets        *metrics.StorefrontMetrics

	mu       sync.RWMutex
	products []Product
	byID     map[string]*Product
	loadErr  error
}

// NewStore builds a catalog store. Metrics may be nil.
func NewStore(repo rawLoader, transformer *Transformer, logg *logger.Logger, mets *metrics.StorefrontMetrics) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if transformer == nil {
		return nil, fmt.Errorf("transformer required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Store{
		repo:        repo,
		transformer: transformer,
		logg:        logg,
		mets:        mets,
	}, nil
}

// LoadProducts fetches and transforms the catalog. On failure the previous
// product list is kept and the error is retained for Err.
func (s *Store) LoadProducts(ctx context.Context) error {
	raws, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logg.Error(ctx, "catalog load failed", err)
		s.mu.Lock()
		s.loadErr = err
		s.mu.Unlock()
		return err
	}

	products := s.transformer.Transform(ctx, raws)
	byID := make(map[string]*Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	s.mu.Lock()
	s.products = products
	s.byID = byID
	s.loadErr = nil
	s.mu.Unlock()

	s.logg.Info(s.logg.WithField(ctx, "count", len(products)), "catalog loaded")
	return nil
}

// Err returns the error of the most recent load attempt, nil after success.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Products returns the transformed product list in catalog order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// ProductByID returns the product with the given id, or nil.
func (s *Store) ProductByID(id string) *Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// ProductsByCategory groups products by category, preserving catalog order
// within each group.
func (s *Store) ProductsByCategory() map[string][]Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grouped := map[string][]Product{}
	for _, product := range s.products {
		grouped[product.Category] = append(grouped[product.Category], product)
	}
	return grouped
}

// Categories returns the sorted list of category names present in the catalog.
func (s *Store) Categories() []string {
	grouped := s.ProductsByCategory()
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Search returns products whose name or category contains the query,
// accent- and case-insensitively. An empty query returns everything.
func (s *Store) Search(query string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := text.Normalize(query)
	if needle == "" {
		return s.products
	}

	var matches []Product
	for _, product := range s.products {
		if strings.Contains(text.Normalize(product.Name), needle) ||
			strings.Contains(text.Normalize(product.Category), needle) {
			matches = append(matches, product)
		}
	}
	return matches
}

// ValidateSelection runs the aggregate option validation and records a
// metric per rejected group.
func (s *Store) ValidateSelection(product *Product, selections options.Selections) ValidationSummary {
	summary := ValidateOptions(product, selections)
	for _, group := range summary.FailedGroups {
		s.mets.IncValidationFailure(group)
	}
	return summary
}
