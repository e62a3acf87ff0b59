package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The menu feed is exported by the restaurant's POS with Spanish field names
// and every numeric encoded as a string. The raw types mirror it verbatim;
// parsing is defensive because the export is not under our control.

// RawMenuDocument is the top-level menu feed.
type RawMenuDocument struct {
	Productos []RawProduct `json:"productos"`
}

// RawProduct is one catalog record as exported by the POS.
type RawProduct struct {
	Codigo      string                `json:"Codigo" validate:"required"`
	Nombre      string                `json:"Nombre" validate:"required"`
	Categoria   string                `json:"Categoria" validate:"required"`
	Area        string                `json:"Area"`
	PrecioBase  string                `json:"PrecioBase"`
	Bloqueado   string                `json:"Bloqueado"`
	Img         string                `json:"img"`
	Combo       []RawComboGroup       `json:"combo"`
	ProductoSin []RawRemoveIngredient `json:"productoSin"`
}

// RawComboGroup is a named option group. Cardinality fields live on each
// choice; by feed convention the first choice carries the group's rule.
type RawComboGroup struct {
	Nombre  string           `json:"nombre"`
	Insumos []RawComboChoice `json:"insumos"`
}

// RawComboChoice is one selectable entry within a combo group.
type RawComboChoice struct {
	Codigo      string `json:"Codigo"`
	Nombre      string `json:"Nombre"`
	Precio      string `json:"Precio"`
	Min         string `json:"min"`
	Max         string `json:"max"`
	Obligatorio string `json:"obligatorio"`
}

// RawRemoveIngredient is one removable ingredient of a product.
type RawRemoveIngredient struct {
	Codigo string `json:"Codigo"`
	Insumo string `json:"Insumo"`
}

// Blocked reports whether the record is flagged as unavailable.
func (p RawProduct) Blocked() bool {
	return p.Bloqueado == "1"
}

func parseIntField(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseDecimalField(value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero
	}
	return parsed
}

func parseFlag(value string) bool {
	return value == "1"
}
