package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/midnightshuttle/storefront-core/pkg/config"
	pkgerrors "github.com/midnightshuttle/storefront-core/pkg/errors"
	"github.com/midnightshuttle/storefront-core/pkg/logger"
	"github.com/midnightshuttle/storefront-core/pkg/text"
	"go.uber.org/multierr"
)

// Repository reads the raw catalog documents. The menu is a static export
// refreshed out of band; there is no remote API behind it.
type Repository struct {
	cfg      config.CatalogConfig
	validate *validator.Validate
	logg     *logger.Logger
}

// NewRepository builds a catalog repository for the configured paths.
func NewRepository(cfg config.CatalogConfig, logg *logger.Logger) (*Repository, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Repository{
		cfg:      cfg,
		validate: validator.New(),
		logg:     logg,
	}, nil
}

// GetAll returns every raw product record. Records failing structural
// validation are skipped with a warning; a missing or unparseable document
// is an error.
func (r *Repository) GetAll(ctx context.Context) ([]RawProduct, error) {
	raw, err := os.ReadFile(r.cfg.MenuPath)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalog, err, "read menu document")
	}

	var doc RawMenuDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalog, err, "parse menu document")
	}

	records := make([]RawProduct, 0, len(doc.Productos))
	var skipped error
	for i, record := range doc.Productos {
		if err := r.validate.Struct(record); err != nil {
			skipped = multierr.Append(skipped, fmt.Errorf("record %d (%s): %w", i, record.Codigo, err))
			continue
		}
		records = append(records, record)
	}
	if skipped != nil {
		r.logg.Warn(r.logg.WithField(ctx, "error", skipped.Error()), "skipped malformed catalog records")
	}

	return records, nil
}

// GetByID returns the raw record with the given code.
func (r *Repository) GetByID(ctx context.Context, id string) (*RawProduct, error) {
	records, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Codigo == id {
			return &records[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// Search returns raw records whose name or category contains the query,
// accent- and case-insensitively.
func (r *Repository) Search(ctx context.Context, query string) ([]RawProduct, error) {
	records, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := text.Normalize(query)
	if needle == "" {
		return records, nil
	}

	var matches []RawProduct
	for _, record := range records {
		if strings.Contains(text.Normalize(record.Nombre), needle) ||
			strings.Contains(text.Normalize(record.Categoria), needle) {
			matches = append(matches, record)
		}
	}
	return matches, nil
}
