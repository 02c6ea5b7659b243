package usecase

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

const ListLoadErrorMessage = "Failed to load products. Please try again later."

// ListContent — загруженный список товаров и выведенные из него категории.
type ListContent struct {
	Products   []domain.Product
	Categories []domain.Category
}

// ProductListView — список товаров с фильтром по одной активной категории.
type ProductListView struct {
	catalog CatalogInfra
	logger  logger.Logger
	state   ViewState[ListContent]
}

func NewProductListView(catalog CatalogInfra, logger logger.Logger) *ProductListView {
	return &ProductListView{
		catalog: catalog,
		logger:  logger,
		state:   Loading[ListContent]{},
	}
}

func (v *ProductListView) State() ViewState[ListContent] {
	return v.state
}

// Load загружает список и пересчитывает категории; первая категория становится активной.
func (v *ProductListView) Load(ctx context.Context) {
	const op = "ProductListView.Load"

	v.state = Loading[ListContent]{}

	products, err := v.catalog.ListProducts(ctx)
	if err != nil {
		v.logger.Errorf(e.Wrap(op, err), "failed to load products")
		v.state = Failed[ListContent]{Message: ListLoadErrorMessage, Err: e.Wrap(op, err)}
		return
	}

	v.state = Loaded[ListContent]{Value: ListContent{
		Products:   products,
		Categories: domain.DeriveCategories(products),
	}}
}

// HandleCategoryClick делает активной категорию с именем name, остальные — неактивными.
// До успешной загрузки ничего не делает.
func (v *ProductListView) HandleCategoryClick(name string) {
	content, ok := v.state.value()
	if !ok {
		return
	}

	categories := make([]domain.Category, len(content.Categories))
	for i, c := range content.Categories {
		categories[i] = domain.Category{Name: c.Name, IsActive: c.Name == name}
	}

	content.Categories = categories
	v.state = Loaded[ListContent]{Value: content}
}

func (v *ProductListView) Categories() []domain.Category {
	content, _ := v.state.value()
	return content.Categories
}

// ActiveCategory возвращает имя активной категории или пустую строку.
func (v *ProductListView) ActiveCategory() string {
	for _, c := range v.Categories() {
		if c.IsActive {
			return c.Name
		}
	}

	return ""
}

// VisibleProducts возвращает товары активной категории либо все, если активной нет.
func (v *ProductListView) VisibleProducts() []domain.Product {
	content, _ := v.state.value()
	return domain.FilterByCategory(content.Products, v.ActiveCategory())
}
