package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ProductID   uint      `json:"product_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Stock       uint      `json:"stock"`
	Available   bool      `json:"available"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductListDTO struct {
	Products []ProductDTO `json:"products"`
	Total    int64        `json:"total"`
}

type CreateProductDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Price       string `json:"price"` // decimal字串  如"19.99"
	Stock       uint   `json:"stock"`
	Available   bool   `json:"available"`
	CategoryID  *uint  `json:"category_id"`
	Description string `json:"description"`
}

func (d *CreateProductDTO) ParsePrice() (decimal.Decimal, error) {
	return decimal.NewFromString(d.Price)
}

type CategoryDTO struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

type CreateCategoryDTO struct {
	Name string `json:"name"`
}
