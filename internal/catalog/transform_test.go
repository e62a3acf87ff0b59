package catalog

import (
	"bytes"
	"context"
	"testing"

	"github.com/midnightshuttle/storefront-core/internal/options"
	"github.com/midnightshuttle/storefront-core/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestTransformer(t *testing.T) *Transformer {
	t.Helper()
	factory, err := options.NewFactory(logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}}), nil)
	require.NoError(t, err)
	transformer, err := NewTransformer(factory)
	require.NoError(t, err)
	return transformer
}

func rawBurger() RawProduct {
	return RawProduct{
		Codigo:     "HAM-01",
		Nombre:     "Hamburguesa Clásica",
		Categoria:  "CLASICA BAR",
		Area:       "COCINA",
		PrecioBase: "18000",
		Combo: []RawComboGroup{
			{
				Nombre: " TIPO DE PAN ",
				Insumos: []RawComboChoice{
					{Codigo: "PAN-01", Nombre: "Brioche", Precio: "0", Min: "1", Max: "1", Obligatorio: "1"},
					{Codigo: "PAN-02", Nombre: "Artesanal", Precio: "2000", Min: "9", Max: "9", Obligatorio: "0"},
				},
			},
			{
				Nombre: "ACOMPANANTE",
				Insumos: []RawComboChoice{
					{Codigo: "AC-01", Nombre: "Papas", Precio: "3000", Min: "1", Max: "3", Obligatorio: "0"},
					{Codigo: "AC-02", Nombre: "Yuca", Precio: "3500", Min: "1", Max: "3", Obligatorio: "0"},
				},
			},
		},
		ProductoSin: []RawRemoveIngredient{
			{Codigo: "ING-01", Insumo: "Cebolla"},
			{Codigo: "ING-02", Insumo: "Tomate"},
		},
	}
}

func TestTransformBuildsStrategiesInDeclarationOrder(t *testing.T) {
	t.Parallel()

	transformer := newTestTransformer(t)
	products := transformer.Transform(context.Background(), []RawProduct{rawBurger()})
	require.Len(t, products, 1)

	product := products[0]
	require.Equal(t, "HAM-01", product.ID)
	require.Equal(t, "Hamburguesa Clásica", product.Name)
	require.True(t, product.BasePrice.Equal(decimal.NewFromInt(18000)))
	require.True(t, product.HasOptions())

	require.Len(t, product.Strategies, 3)
	require.Equal(t, "TIPO DE PAN", product.Strategies[0].Name())
	require.Equal(t, "ACOMPANANTE", product.Strategies[1].Name())
	require.Equal(t, "Personaliza tu pedido", product.Strategies[2].Name())

	// Group rule comes from the first insumo only.
	require.IsType(t, &options.RadioRequired{}, product.Strategies[0])
	require.IsType(t, &options.CheckboxMulti{}, product.Strategies[1])
	require.IsType(t, &options.RemoveIngredient{}, product.Strategies[2])

	sin := product.Strategies[2].Choices()
	require.Equal(t, "Sin Cebolla", sin[0].Label)
	require.Equal(t, "ING-02", sin[1].Value)
}

func TestTransformDropsBlockedProducts(t *testing.T) {
	t.Parallel()

	blocked := rawBurger()
	blocked.Codigo = "HAM-02"
	blocked.Bloqueado = "1"

	transformer := newTestTransformer(t)
	products := transformer.Transform(context.Background(), []RawProduct{rawBurger(), blocked})

	require.Len(t, products, 1)
	require.Equal(t, "HAM-01", products[0].ID)
}

func TestTransformImageResolution(t *testing.T) {
	t.Parallel()

	transformer := newTestTransformer(t)

	withImage := rawBurger()
	withImage.Img = "https://cdn.example.com/burger.jpg"

	knownCategory := rawBurger()
	knownCategory.Img = ""

	unknownCategory := rawBurger()
	unknownCategory.Categoria = "NUEVA CATEGORIA"

	products := transformer.Transform(context.Background(), []RawProduct{withImage, knownCategory, unknownCategory})
	require.Equal(t, "https://cdn.example.com/burger.jpg", products[0].Image)
	require.Equal(t, categoryImages["CLASICA BAR"], products[1].Image)
	require.Equal(t, defaultProductImage, products[2].Image)
}

func TestTransformWithoutOptions(t *testing.T) {
	t.Parallel()

	raw := RawProduct{
		Codigo:     "BEB-01",
		Nombre:     "Limonada de Coco",
		Categoria:  "LIMONADAS",
		PrecioBase: "8000",
	}

	transformer := newTestTransformer(t)
	products := transformer.Transform(context.Background(), []RawProduct{raw})

	require.Len(t, products, 1)
	require.False(t, products[0].HasOptions())
	require.Empty(t, products[0].Strategies)
}

func TestTransformUnparseablePriceDefaultsToZero(t *testing.T) {
	t.Parallel()

	raw := rawBurger()
	raw.PrecioBase = "no-price"

	transformer := newTestTransformer(t)
	products := transformer.Transform(context.Background(), []RawProduct{raw})
	require.True(t, products[0].BasePrice.IsZero())
}
