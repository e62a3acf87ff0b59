package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/midnightshuttle/storefront-core/internal/options"
)

// removeIngredientGroupName is the display name of the synthesized group
// covering a product's removable ingredients.
const removeIngredientGroupName = "Personaliza tu pedido"

var categoryImages = map[string]string{
	"ADICIONALES":       "https://images.unsplash.com/photo-1618346136472-090de76b4cc0?w=600",
	"AL BARRIL":         "https://images.unsplash.com/photo-1544025162-d76694265947?w=600",
	"ASADOS CARBON":     "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=600",
	"BEBIDAS":           "https://images.unsplash.com/photo-1437418747212-8d9709afab22?w=600",
	"CLASICA BAR":       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=600",
	"COCTELES":          "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=600",
	"DESGRANADO":        "https://images.unsplash.com/photo-1551462147-37950a0f9a4e?w=600",
	"ENT PARA PICAR":    "https://images.unsplash.com/photo-1621457734625-8abafef1d10b?w=600",
	"INFANTIL":          "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?w=600",
	"LIMONADAS":         "https://images.unsplash.com/photo-1523677011781-c91d1bbe4a61?w=600",
	"MEKATOS":           "https://images.unsplash.com/photo-1621939514649-280e2ee25f60?w=600",
	"PAL GRUPO":         "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=600",
	"PERROS":            "https://images.unsplash.com/photo-1612392062422-ef19b42f74df?w=600",
	"PICADA DE CARNE":   "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=600",
	"PLATOS ESPECIALES": "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=600",
	"SALCHIPAPAS":       "https://images.unsplash.com/photo-1599599810769-bcde5a160d32?w=600",
	"SHOTS":             "https://images.unsplash.com/photo-1514361892635-6b07e31e75f9?w=600",
	"SODAS MICHELADAS":  "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?w=600",
	"Z LICORES":         "https://images.unsplash.com/photo-1470337458703-46ad1756a187?w=600",
	"ZZ EVENTOS":        "https://images.unsplash.com/photo-1530103043960-ef38714abb15?w=600",
}

const defaultProductImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=600"

func placeholderImage(category string) string {
	if url, ok := categoryImages[category]; ok {
		return url
	}
	return defaultProductImage
}

// Transformer converts raw catalog records into Product entities.
type Transformer struct {
	factory *options.Factory
}

// NewTransformer builds a transformer over the given strategy factory.
func NewTransformer(factory *options.Factory) (*Transformer, error) {
	if factory == nil {
		return nil, fmt.Errorf("strategy factory required")
	}
	return &Transformer{factory: factory}, nil
}

// Transform converts the raw records, dropping blocked ones. Record order
// is preserved.
func (t *Transformer) Transform(ctx context.Context, raws []RawProduct) []Product {
	products := make([]Product, 0, len(raws))
	for _, raw := range raws {
		if raw.Blocked() {
			continue
		}
		products = append(products, t.transformOne(ctx, raw))
	}
	return products
}

func (t *Transformer) transformOne(ctx context.Context, raw RawProduct) Product {
	configs := make([]options.GroupConfig, 0, len(raw.Combo)+1)
	for _, grupo := range raw.Combo {
		configs = append(configs, comboGroupConfig(grupo))
	}
	if cfg, ok := removeIngredientConfig(raw.ProductoSin); ok {
		configs = append(configs, cfg)
	}

	image := raw.Img
	if image == "" {
		image = placeholderImage(raw.Categoria)
	}

	return Product{
		ID:          raw.Codigo,
		Name:        raw.Nombre,
		Description: raw.Categoria,
		Category:    raw.Categoria,
		Area:        raw.Area,
		BasePrice:   parseDecimalField(raw.PrecioBase),
		Image:       image,
		Strategies:  t.factory.ClassifyAll(ctx, configs),
	}
}

// comboGroupConfig reads the group's cardinality rule from the FIRST choice.
// The feed repeats min/max/obligatorio on every choice; reading it once is
// the established convention.
func comboGroupConfig(grupo RawComboGroup) options.GroupConfig {
	var first RawComboChoice
	if len(grupo.Insumos) > 0 {
		first = grupo.Insumos[0]
	}

	choices := make([]options.Choice, 0, len(grupo.Insumos))
	for _, insumo := range grupo.Insumos {
		raw, _ := json.Marshal(insumo)
		choices = append(choices, options.Choice{
			Label: insumo.Nombre,
			Value: insumo.Codigo,
			Price: parseDecimalField(insumo.Precio),
			Raw:   raw,
		})
	}

	return options.GroupConfig{
		Name:     strings.TrimSpace(grupo.Nombre),
		Min:      parseIntField(first.Min, 0),
		Max:      parseIntField(first.Max, 1),
		Required: parseFlag(first.Obligatorio),
		Kind:     options.KindStandard,
		Choices:  choices,
	}
}

func removeIngredientConfig(items []RawRemoveIngredient) (options.GroupConfig, bool) {
	if len(items) == 0 {
		return options.GroupConfig{}, false
	}

	choices := make([]options.Choice, 0, len(items))
	for _, item := range items {
		raw, _ := json.Marshal(item)
		choices = append(choices, options.Choice{
			Label: "Sin " + item.Insumo,
			Value: item.Codigo,
			Raw:   raw,
		})
	}

	return options.GroupConfig{
		Name:    removeIngredientGroupName,
		Min:     0,
		Max:     len(choices),
		Kind:    options.KindRemoveIngredient,
		Choices: choices,
	}, true
}
