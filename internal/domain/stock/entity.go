package stock

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProduct    = errors.New("produto é obrigatório")
	ErrEmptyParty      = errors.New("fornecedor ou cliente é obrigatório")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
)

// Receipt representa uma entrada de estoque (compra de um produtor)
type Receipt struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	FarmerID  string    `json:"farmer_id"` // fornecedor
	Quantity  float64   `json:"quantity"`
	Date      time.Time `json:"date"`
	SeasonID  *string   `json:"season_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Issue representa uma saída de estoque (venda a um cliente)
type Issue struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	CustomerID string    `json:"customer_id"`
	Quantity   float64   `json:"quantity"`
	Date       time.Time `json:"date"`
	SeasonID   *string   `json:"season_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReceiptRow é a linha da listagem de entradas, com os nomes de produto e
// fornecedor resolvidos por JOIN na consulta
type ReceiptRow struct {
	Receipt
	ProductName  string `json:"product_name"`
	SupplierName string `json:"supplier_name"`
}

// IssueRow é a linha da listagem de saídas, com os nomes de produto e
// cliente resolvidos por JOIN na consulta
type IssueRow struct {
	Issue
	ProductName  string `json:"product_name"`
	CustomerName string `json:"customer_name"`
}

// NewReceipt cria uma nova entrada de estoque
func NewReceipt(productID, farmerID string, quantity float64, date time.Time, seasonID *string) (*Receipt, error) {
	if productID == "" {
		return nil, ErrEmptyProduct
	}
	if farmerID == "" {
		return nil, ErrEmptyParty
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Receipt{
		ID:        uuid.New().String(),
		ProductID: productID,
		FarmerID:  farmerID,
		Quantity:  quantity,
		Date:      date,
		SeasonID:  seasonID,
		CreatedAt: time.Now(),
	}, nil
}

// NewIssue cria uma nova saída de estoque
func NewIssue(productID, customerID string, quantity float64, date time.Time, seasonID *string) (*Issue, error) {
	if productID == "" {
		return nil, ErrEmptyProduct
	}
	if customerID == "" {
		return nil, ErrEmptyParty
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Issue{
		ID:         uuid.New().String(),
		ProductID:  productID,
		CustomerID: customerID,
		Quantity:   quantity,
		Date:       date,
		SeasonID:   seasonID,
		CreatedAt:  time.Now(),
	}, nil
}
