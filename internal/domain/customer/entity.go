package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome do cliente não pode ser vazio")
	ErrInvalidEmail = errors.New("email inválido")
)

// Customer representa um cliente comprador de estoque
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListRow é a linha da listagem de clientes com os totais agregados de
// vendas (resolvidos por JOIN na consulta)
type ListRow struct {
	Customer
	TotalInvoices int     `json:"total_invoices"`
	TotalPaid     float64 `json:"total_paid"`
}

// NewCustomer cria um novo cliente
func NewCustomer(name, email, imageURL string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
