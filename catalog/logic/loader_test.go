package logic

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramakant55/Trendora-Boutique/common"
)

func TestLoadDefault_embeddedCatalog(t *testing.T) {
	store, err := LoadDefault()
	require.NoError(t, err)

	assert.NotEmpty(t, store.ListProducts())
	assert.NotEmpty(t, store.ListCollections())
	assert.NotEmpty(t, store.ListTestimonials())

	scarf, err := store.ProductByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Silk Scarf", scarf.Name)
	assert.Equal(t, common.Cents(4900), scarf.Price)

	for _, c := range store.ListCollections() {
		assert.NotEmpty(t, store.FilterByCollection(c.Name), "collection %q has no products", c.Name)
	}
}

func TestLoad_currencyStringsAndNumbers(t *testing.T) {
	fsys := fstest.MapFS{
		ProductsFile: {Data: []byte(`[
			{"id": 1, "name": "Scarf", "category": "Accessories", "price": "$49", "rating": 4},
			{"id": 2, "name": "Gown", "category": "Dresses", "price": "$1,299.50", "rating": 5},
			{"id": 3, "name": "Tee", "category": "Tops", "price": 19.99, "rating": 3.5}
		]`)},
		CollectionsFile: {Data: []byte(`[{"id": 1, "name": "Tops", "category": "Tops"}]`)},
	}

	store, err := Load(fsys)
	require.NoError(t, err)

	prices := []common.Money{}
	for _, p := range store.ListProducts() {
		prices = append(prices, p.Price)
	}
	assert.Equal(t, []common.Money{4900, 129950, 1999}, prices)
	assert.Empty(t, store.ListTestimonials())
}

func TestLoad_rejectsInvalidCatalogs(t *testing.T) {
	collections := []byte(`[]`)
	tests := map[string]string{
		"duplicate id":   `[{"id": 1, "name": "A", "category": "X", "price": 1}, {"id": 1, "name": "B", "category": "X", "price": 1}]`,
		"negative price": `[{"id": 1, "name": "A", "category": "X", "price": -1}]`,
		"rating too big": `[{"id": 1, "name": "A", "category": "X", "price": 1, "rating": 5.5}]`,
		"missing name":   `[{"id": 1, "category": "X", "price": 1}]`,
		"bad price":      `[{"id": 1, "name": "A", "category": "X", "price": "free"}]`,
		"zero id":        `[{"id": 0, "name": "A", "category": "X", "price": 1}]`,
	}
	for name, products := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(fstest.MapFS{
				ProductsFile:    {Data: []byte(products)},
				CollectionsFile: {Data: collections},
			})
			assert.Error(t, err)
		})
	}
}

func TestLoad_missingProductsFile(t *testing.T) {
	_, err := Load(fstest.MapFS{CollectionsFile: {Data: []byte(`[]`)}})
	assert.ErrorContains(t, err, ProductsFile)
}

func TestLoadDir(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.Error(t, err)
}
