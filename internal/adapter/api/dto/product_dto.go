package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name              string  `json:"name" binding:"required"`
	PurchaseUnitPrice float64 `json:"purchase_unit_price" binding:"required,gt=0"`
	SaleUnitPrice     float64 `json:"sale_unit_price" binding:"required,gt=0"`
	Unit              string  `json:"unit"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	PurchaseUnitPrice float64   `json:"purchase_unit_price"`
	SaleUnitPrice     float64   `json:"sale_unit_price"`
	Unit              string    `json:"unit"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um produto do domínio para o formato de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		PurchaseUnitPrice: p.PurchaseUnitPrice,
		SaleUnitPrice:     p.SaleUnitPrice,
		Unit:              p.Unit,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToProductResponses converte uma lista de produtos do domínio
func ToProductResponses(products []*product.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return items
}
