package domain

import "github.com/shopspring/decimal"

// Product — товар из удалённого каталога. После загрузки не изменяется.
type Product struct {
	ID                 int64
	Title              string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage float64
	Rating             float64 // 0–5
	Stock              int
	Brand              string
	Category           string
	Thumbnail          string
	Images             []string
}

// Cover возвращает главное изображение товара: первое из Images либо Thumbnail.
func (p *Product) Cover() string {
	if len(p.Images) > 0 && p.Images[0] != "" {
		return p.Images[0]
	}

	return p.Thumbnail
}
