package catalog

import (
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// productModel — товар в формате удалённого каталога
type productModel struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Brand              string          `json:"brand"`
	Category           string          `json:"category"`
	Thumbnail          string          `json:"thumbnail"`
	Images             []string        `json:"images"`
}

type productsResponse struct {
	Products []productModel `json:"products"`
	Total    int            `json:"total"`
}

func toDomain(m *productModel) *domain.Product {
	return &domain.Product{
		ID:                 m.ID,
		Title:              m.Title,
		Description:        m.Description,
		Price:              m.Price,
		DiscountPercentage: m.DiscountPercentage,
		Rating:             m.Rating,
		Stock:              m.Stock,
		Brand:              m.Brand,
		Category:           m.Category,
		Thumbnail:          m.Thumbnail,
		Images:             m.Images,
	}
}

func toArrDomain(models []productModel) []domain.Product {
	res := make([]domain.Product, len(models))
	for i := range models {
		res[i] = *toDomain(&models[i])
	}

	return res
}
