package models

import "github.com/shopspring/decimal"

// Product представляет товар каталога
type Product struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discountPrice"` // скидочная цена; если задана, действует именно она
	ImageURL      string              `json:"imageUrl"`
	IsFeatured    bool                `json:"isFeatured"`
	IsTrending    bool                `json:"isTrending"`
	CategoryID    int64               `json:"categoryId"`
	CategoryName  string              `json:"categoryName"` // денормализованное имя категории; заполняется на стороне БД
	StockQuantity int                 `json:"stockQuantity"`
}

// EffectivePrice возвращает действующую цену товара: скидочную, если она задана, иначе базовую.
// Все денежные вычисления обязаны использовать эту функцию, а не обращаться к полям напрямую.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice.Valid {
		return p.DiscountPrice.Decimal
	}
	return p.Price
}
