package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/invoice"
)

// InvoiceRequest representa a requisição de fatura. O valor é informado em
// unidades monetárias com no máximo duas casas decimais.
type InvoiceRequest struct {
	FarmerID string    `json:"farmer_id" binding:"required"`
	Amount   float64   `json:"amount" binding:"required,gt=0"`
	Status   string    `json:"status" binding:"required,oneof=pending paid"`
	Date     time.Time `json:"date" binding:"required"`
}

// InvoiceResponse representa a resposta de fatura
type InvoiceResponse struct {
	ID        string    `json:"id"`
	FarmerID  string    `json:"farmer_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// InvoiceListItem representa uma fatura na listagem, com os dados do produtor
type InvoiceListItem struct {
	InvoiceResponse
	FarmerName  string `json:"farmer_name"`
	FarmerEmail string `json:"farmer_email"`
}

// InvoiceListResponse representa a resposta de lista de faturas
type InvoiceListResponse struct {
	Items      []InvoiceListItem `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToInvoiceResponse converte uma fatura do domínio para o formato de resposta
func ToInvoiceResponse(i *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        i.ID,
		FarmerID:  i.FarmerID,
		Amount:    i.Amount(),
		Status:    string(i.Status),
		Date:      i.Date,
		CreatedAt: i.CreatedAt,
	}
}

// ToInvoiceListItems converte as linhas da listagem de faturas
func ToInvoiceListItems(rows []*invoice.ListRow) []InvoiceListItem {
	items := make([]InvoiceListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, InvoiceListItem{
			InvoiceResponse: ToInvoiceResponse(&row.Invoice),
			FarmerName:      row.FarmerName,
			FarmerEmail:     row.FarmerEmail,
		})
	}
	return items
}
