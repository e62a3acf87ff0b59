package catalog

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	pkgerrors "github.com/midnightshuttle/storefront-core/pkg/errors"
)

// Category is one entry of the category registry document.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Image string `json:"image,omitempty"`
}

type categoriesDocument struct {
	Categories map[string]Category `json:"categories"`
}

// CategoryRegistry holds the static category metadata keyed by id.
type CategoryRegistry struct {
	byID map[string]Category
}

// LoadCategoryRegistry reads the registry document from path.
func LoadCategoryRegistry(ctx context.Context, path string) (*CategoryRegistry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalog, err, "read categories document")
	}

	var doc categoriesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalog, err, "parse categories document")
	}

	byID := make(map[string]Category, len(doc.Categories))
	for id, cat := range doc.Categories {
		cat.ID = id
		byID[id] = cat
	}
	return &CategoryRegistry{byID: byID}, nil
}

// GetByID returns the category with the given id.
func (r *CategoryRegistry) GetByID(id string) (Category, bool) {
	cat, ok := r.byID[id]
	return cat, ok
}

// List returns every category sorted by display name.
func (r *CategoryRegistry) List() []Category {
	list := make([]Category, 0, len(r.byID))
	for _, cat := range r.byID {
		list = append(list, cat)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
