package domain

import (
	"unicode"
	"unicode/utf8"
)

// Category описывает категорию, выведенную из списка товаров
type Category struct {
	Name     string
	IsActive bool
}

// DisplayName возвращает имя категории с заглавной первой буквой.
func (c Category) DisplayName() string {
	r, size := utf8.DecodeRuneInString(c.Name)
	if r == utf8.RuneError {
		return c.Name
	}

	return string(unicode.ToUpper(r)) + c.Name[size:]
}

// DeriveCategories возвращает уникальные категории в порядке первого появления.
// Первая категория становится активной.
func DeriveCategories(products []Product) []Category {
	seen := make(map[string]struct{}, len(products))
	categories := make([]Category, 0)

	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, Category{
			Name:     p.Category,
			IsActive: len(categories) == 0,
		})
	}

	return categories
}

// FilterByCategory возвращает товары выбранной категории; пустое имя означает «все товары».
func FilterByCategory(products []Product, category string) []Product {
	if category == "" {
		return products
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
