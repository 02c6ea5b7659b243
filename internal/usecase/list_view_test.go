package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCount(categories []domain.Category) int {
	n := 0
	for _, c := range categories {
		if c.IsActive {
			n++
		}
	}

	return n
}

func TestListView_StartsLoading(t *testing.T) {
	v := NewProductListView(catalogWith("a"), testLogger())

	assert.IsType(t, Loading[ListContent]{}, v.State())
	assert.Empty(t, v.Categories())
	assert.Empty(t, v.VisibleProducts())
}

func TestListView_DerivesCategories(t *testing.T) {
	v := NewProductListView(catalogWith("a", "b", "a", "c"), testLogger())
	v.Load(context.Background())

	require.IsType(t, Loaded[ListContent]{}, v.State())
	assert.Equal(t, []domain.Category{
		{Name: "a", IsActive: true},
		{Name: "b"},
		{Name: "c"},
	}, v.Categories())
	assert.Equal(t, "a", v.ActiveCategory())

	visible := v.VisibleProducts()
	require.Len(t, visible, 2)
	assert.Equal(t, int64(1), visible[0].ID)
	assert.Equal(t, int64(3), visible[1].ID)
}

func TestListView_HandleCategoryClick(t *testing.T) {
	v := NewProductListView(catalogWith("a", "b", "a", "c"), testLogger())
	v.Load(context.Background())

	v.HandleCategoryClick("c")

	assert.Equal(t, 1, activeCount(v.Categories()))
	assert.Equal(t, "c", v.ActiveCategory())
	require.Len(t, v.VisibleProducts(), 1)
	for _, p := range v.VisibleProducts() {
		assert.Equal(t, "c", p.Category)
	}
	assert.IsType(t, Loaded[ListContent]{}, v.State())
}

func TestListView_HandleCategoryClick_Unknown(t *testing.T) {
	v := NewProductListView(catalogWith("a", "b"), testLogger())
	v.Load(context.Background())

	v.HandleCategoryClick("missing")

	assert.Zero(t, activeCount(v.Categories()))
	assert.Empty(t, v.ActiveCategory())
	assert.Len(t, v.VisibleProducts(), 2)
}

func TestListView_HandleCategoryClick_BeforeLoad(t *testing.T) {
	v := NewProductListView(catalogWith("a"), testLogger())

	v.HandleCategoryClick("a")

	assert.IsType(t, Loading[ListContent]{}, v.State())
}

func TestListView_EmptyCatalog(t *testing.T) {
	v := NewProductListView(&fakeCatalog{}, testLogger())
	v.Load(context.Background())

	require.IsType(t, Loaded[ListContent]{}, v.State())
	assert.Empty(t, v.Categories())
	assert.Empty(t, v.ActiveCategory())
	assert.Empty(t, v.VisibleProducts())
}

func TestListView_LoadFailure(t *testing.T) {
	catalog := &fakeCatalog{listErr: e.Wrap("catalog", e.ErrFetchFailed)}
	v := NewProductListView(catalog, testLogger())
	v.Load(context.Background())

	failed, ok := v.State().(Failed[ListContent])
	require.True(t, ok, "expected Failed, got %T", v.State())
	assert.Equal(t, ListLoadErrorMessage, failed.Message)
	assert.True(t, errors.Is(failed.Err, e.ErrFetchFailed))
	assert.Empty(t, v.VisibleProducts())

	v.HandleCategoryClick("a")
	assert.IsType(t, Failed[ListContent]{}, v.State())
}

func TestListView_ReloadRecomputesCategories(t *testing.T) {
	catalog := catalogWith("a", "b")
	v := NewProductListView(catalog, testLogger())
	v.Load(context.Background())
	v.HandleCategoryClick("b")

	catalog.products = append(catalog.products, domain.Product{ID: 9, Category: "z"})
	v.Load(context.Background())

	assert.Equal(t, "a", v.ActiveCategory())
	assert.Len(t, v.Categories(), 3)
	assert.Equal(t, 2, catalog.listCalls)
}
