package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/customer"
)

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	ImageURL string `json:"image_url"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListItem representa um cliente na listagem, com os totais de
// vendas agregados
type CustomerListItem struct {
	CustomerResponse
	TotalInvoices int     `json:"total_invoices"`
	TotalPaid     float64 `json:"total_paid"`
}

// CustomerListResponse representa a resposta de lista de clientes
type CustomerListResponse struct {
	Items      []CustomerListItem `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToCustomerResponse converte um cliente do domínio para o formato de resposta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		ImageURL:  c.ImageURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerListItems converte as linhas da listagem de clientes
func ToCustomerListItems(rows []*customer.ListRow) []CustomerListItem {
	items := make([]CustomerListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, CustomerListItem{
			CustomerResponse: ToCustomerResponse(&row.Customer),
			TotalInvoices:    row.TotalInvoices,
			TotalPaid:        row.TotalPaid,
		})
	}
	return items
}
