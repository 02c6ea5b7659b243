package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func productsIn(categories ...string) []Product {
	products := make([]Product, len(categories))
	for i, c := range categories {
		products[i] = Product{ID: int64(i + 1), Category: c}
	}

	return products
}

func TestDeriveCategories_FirstSeenOrder(t *testing.T) {
	got := DeriveCategories(productsIn("a", "b", "a", "c"))

	assert.Equal(t, []Category{
		{Name: "a", IsActive: true},
		{Name: "b"},
		{Name: "c"},
	}, got)
}

func TestDeriveCategories_Empty(t *testing.T) {
	assert.Empty(t, DeriveCategories(nil))
}

func TestFilterByCategory(t *testing.T) {
	products := productsIn("a", "b", "a", "c")

	assert.Len(t, FilterByCategory(products, "a"), 2)
	assert.Equal(t, int64(4), FilterByCategory(products, "c")[0].ID)
	assert.Len(t, FilterByCategory(products, ""), 4)
	assert.Empty(t, FilterByCategory(products, "missing"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Beauty", Category{Name: "beauty"}.DisplayName())
	assert.Equal(t, "Home-decoration", Category{Name: "home-decoration"}.DisplayName())
	assert.Equal(t, "", Category{}.DisplayName())
}

func TestCover(t *testing.T) {
	p := Product{Thumbnail: "thumb.png"}
	assert.Equal(t, "thumb.png", p.Cover())

	p.Images = []string{"1.png", "2.png"}
	assert.Equal(t, "1.png", p.Cover())
}
