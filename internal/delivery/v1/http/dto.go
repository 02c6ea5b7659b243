package http

import (
	"time"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/shopspring/decimal"
)

// QuantityRequest — тело запросов, изменяющих количество.
type QuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type CategoryResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	IsActive    bool   `json:"is_active"`
}

type ProductResponse struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price" swaggertype:"string" example:"9.99"`
	DiscountPercentage float64         `json:"discount_percentage,omitempty"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock,omitempty"`
	Brand              string          `json:"brand,omitempty"`
	Category           string          `json:"category"`
	Thumbnail          string          `json:"thumbnail"`
	Images             []string        `json:"images"`
	Cover              string          `json:"cover"`
}

type ProductListResponse struct {
	Categories     []CategoryResponse `json:"categories"`
	ActiveCategory string             `json:"active_category"`
	Products       []ProductResponse  `json:"products"`
}

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total" swaggertype:"string" example:"19.98"`
}

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	TotalQuantity int                `json:"total_quantity"`
	Subtotal      decimal.Decimal    `json:"subtotal" swaggertype:"string" example:"19.98"`
}

type NotificationResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type AddToCartResponse struct {
	Notification NotificationResponse `json:"notification"`
	Cart         CartResponse         `json:"cart"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return ProductResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Brand:              p.Brand,
		Category:           p.Category,
		Thumbnail:          p.Thumbnail,
		Images:             images,
		Cover:              p.Cover(),
	}
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = toProductResponse(&products[i])
	}

	return res
}

func toProductListResponse(res *usecase.ListProductsRes) ProductListResponse {
	categories := make([]CategoryResponse, len(res.Categories))
	for i, c := range res.Categories {
		categories[i] = CategoryResponse{
			Name:        c.Name,
			DisplayName: c.DisplayName(),
			IsActive:    c.IsActive,
		}
	}

	return ProductListResponse{
		Categories:     categories,
		ActiveCategory: res.ActiveCategory,
		Products:       toArrProductResponse(res.Products),
	}
}

func toCartResponse(res *usecase.CartRes) CartResponse {
	items := make([]CartItemResponse, len(res.Items))
	for i, item := range res.Items {
		items[i] = CartItemResponse{
			Product:  toProductResponse(&item.Product),
			Quantity: item.Quantity,
			Total:    item.Total(),
		}
	}

	return CartResponse{
		Items:         items,
		TotalQuantity: res.TotalQuantity,
		Subtotal:      res.Subtotal,
	}
}

func toNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID.String(),
		Title:       n.Title,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
	}
}
