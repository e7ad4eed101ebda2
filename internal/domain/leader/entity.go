package leader

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("nome do líder não pode ser vazio")
	ErrEmptySupervisor  = errors.New("supervisor é obrigatório")
	ErrShortIDNumber    = errors.New("número de identidade muito curto")
	ErrShortPhoneNumber = errors.New("telefone muito curto")
)

// Leader representa um líder de equipe responsável por um grupo de produtores
type Leader struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IDNumber     string    `json:"id_number"`
	PhoneNumber  string    `json:"phone_number"`
	Email        string    `json:"email"`
	City         string    `json:"city"`
	District     string    `json:"district"`
	Sector       string    `json:"sector"`
	Cell         string    `json:"cell"`
	Village      string    `json:"village"`
	SupervisorID string    `json:"supervisor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewLeader cria um novo líder de equipe
func NewLeader(name, idNumber, phoneNumber, email, city, district, sector, cell, village, supervisorID string) (*Leader, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(idNumber) < 10 {
		return nil, ErrShortIDNumber
	}
	if len(phoneNumber) < 8 {
		return nil, ErrShortPhoneNumber
	}
	if supervisorID == "" {
		return nil, ErrEmptySupervisor
	}

	now := time.Now()
	return &Leader{
		ID:           uuid.New().String(),
		Name:         name,
		IDNumber:     idNumber,
		PhoneNumber:  phoneNumber,
		Email:        email,
		City:         city,
		District:     district,
		Sector:       sector,
		Cell:         cell,
		Village:      village,
		SupervisorID: supervisorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
