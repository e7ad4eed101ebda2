package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome do produto não pode ser vazio")
	ErrInvalidPrice = errors.New("preço deve ser maior que zero")
)

// Product representa um produto do catálogo (sementes, insumos)
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	PurchaseUnitPrice float64   `json:"purchase_unit_price"`
	SaleUnitPrice     float64   `json:"sale_unit_price"`
	Unit              string    `json:"unit"` // unidade de medida (kg, saco)
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name string, purchaseUnitPrice, saleUnitPrice float64, unit string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if purchaseUnitPrice <= 0 || saleUnitPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Product{
		ID:                uuid.New().String(),
		Name:              name,
		PurchaseUnitPrice: purchaseUnitPrice,
		SaleUnitPrice:     saleUnitPrice,
		Unit:              unit,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
