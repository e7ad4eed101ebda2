package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/agro-dashboard/pkg/money"
)

var (
	ErrEmptyFarmer   = errors.New("produtor é obrigatório")
	ErrInvalidAmount = errors.New("valor deve ser maior que zero")
	ErrInvalidStatus = errors.New("status de fatura inválido")
)

// Status representa o estado de pagamento da fatura
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// IsValid verifica se o status é um dos valores conhecidos
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice representa uma fatura a pagar a um produtor. O valor é armazenado
// em centavos; a conversão acontece na criação e na atualização.
type Invoice struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmer_id"`
	AmountCents int64     `json:"amount_cents"`
	Status      Status    `json:"status"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListRow é a linha da listagem de faturas, com os dados do produtor
// resolvidos por JOIN na consulta
type ListRow struct {
	Invoice
	FarmerName  string `json:"farmer_name"`
	FarmerEmail string `json:"farmer_email"`
}

// NewInvoice cria uma nova fatura a partir do valor de exibição
func NewInvoice(farmerID string, displayAmount float64, status Status, date time.Time) (*Invoice, error) {
	if farmerID == "" {
		return nil, ErrEmptyFarmer
	}
	if displayAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	cents, err := money.ToCents(displayAmount)
	if err != nil {
		return nil, err
	}

	return &Invoice{
		ID:          uuid.New().String(),
		FarmerID:    farmerID,
		AmountCents: cents,
		Status:      status,
		Date:        date,
		CreatedAt:   time.Now(),
	}, nil
}

// Amount retorna o valor de exibição da fatura
func (i *Invoice) Amount() float64 {
	return money.FromCents(i.AmountCents)
}

// SetAmount substitui o valor da fatura a partir do valor de exibição
func (i *Invoice) SetAmount(displayAmount float64) error {
	if displayAmount <= 0 {
		return ErrInvalidAmount
	}
	cents, err := money.ToCents(displayAmount)
	if err != nil {
		return err
	}
	i.AmountCents = cents
	return nil
}
