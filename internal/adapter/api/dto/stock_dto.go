package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/stock"
)

// ReceiptRequest representa a requisição de entrada de estoque
type ReceiptRequest struct {
	ProductID string    `json:"product_id" binding:"required"`
	FarmerID  string    `json:"farmer_id" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
	Date      time.Time `json:"date" binding:"required"`
	SeasonID  *string   `json:"season_id"`
}

// ReceiptResponse representa a resposta de entrada de estoque
type ReceiptResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	FarmerID  string    `json:"farmer_id"`
	Quantity  float64   `json:"quantity"`
	Date      time.Time `json:"date"`
	SeasonID  *string   `json:"season_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ReceiptListItem representa uma entrada na listagem, com os nomes de
// produto e fornecedor resolvidos
type ReceiptListItem struct {
	ReceiptResponse
	ProductName  string `json:"product_name"`
	SupplierName string `json:"supplier_name"`
}

// ReceiptListResponse representa a resposta de lista de entradas de estoque
type ReceiptListResponse struct {
	Items      []ReceiptListItem `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// IssueRequest representa a requisição de saída de estoque
type IssueRequest struct {
	ProductID  string    `json:"product_id" binding:"required"`
	CustomerID string    `json:"customer_id" binding:"required"`
	Quantity   float64   `json:"quantity" binding:"required,gt=0"`
	Date       time.Time `json:"date" binding:"required"`
	SeasonID   *string   `json:"season_id"`
}

// IssueResponse representa a resposta de saída de estoque
type IssueResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	CustomerID string    `json:"customer_id"`
	Quantity   float64   `json:"quantity"`
	Date       time.Time `json:"date"`
	SeasonID   *string   `json:"season_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// IssueListItem representa uma saída na listagem, com os nomes de produto
// e cliente resolvidos
type IssueListItem struct {
	IssueResponse
	ProductName  string `json:"product_name"`
	CustomerName string `json:"customer_name"`
}

// IssueListResponse representa a resposta de lista de saídas de estoque
type IssueListResponse struct {
	Items      []IssueListItem `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalPages int             `json:"total_pages"`
}

// ToReceiptResponse converte uma entrada do domínio para o formato de resposta
func ToReceiptResponse(r *stock.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		FarmerID:  r.FarmerID,
		Quantity:  r.Quantity,
		Date:      r.Date,
		SeasonID:  r.SeasonID,
		CreatedAt: r.CreatedAt,
	}
}

// ToReceiptListItems converte as linhas da listagem de entradas
func ToReceiptListItems(rows []*stock.ReceiptRow) []ReceiptListItem {
	items := make([]ReceiptListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ReceiptListItem{
			ReceiptResponse: ToReceiptResponse(&row.Receipt),
			ProductName:     row.ProductName,
			SupplierName:    row.SupplierName,
		})
	}
	return items
}

// ToIssueResponse converte uma saída do domínio para o formato de resposta
func ToIssueResponse(i *stock.Issue) IssueResponse {
	return IssueResponse{
		ID:         i.ID,
		ProductID:  i.ProductID,
		CustomerID: i.CustomerID,
		Quantity:   i.Quantity,
		Date:       i.Date,
		SeasonID:   i.SeasonID,
		CreatedAt:  i.CreatedAt,
	}
}

// ToIssueListItems converte as linhas da listagem de saídas
func ToIssueListItems(rows []*stock.IssueRow) []IssueListItem {
	items := make([]IssueListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, IssueListItem{
			IssueResponse: ToIssueResponse(&row.Issue),
			ProductName:   row.ProductName,
			CustomerName:  row.CustomerName,
		})
	}
	return items
}
