package supervisor

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome do supervisor não pode ser vazio")
	ErrShortIDNumber = errors.New("número de identidade muito curto")
)

// Supervisor representa um supervisor de campo
type Supervisor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	IDNumber    string    `json:"id_number"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	City        string    `json:"city"`
	District    string    `json:"district"`
	Sector      string    `json:"sector"`
	Cell        string    `json:"cell"`
	Village     string    `json:"village"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSupervisor cria um novo supervisor
func NewSupervisor(name, idNumber, phoneNumber, email, city, district, sector, cell, village string) (*Supervisor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(idNumber) < 8 {
		return nil, ErrShortIDNumber
	}

	now := time.Now()
	return &Supervisor{
		ID:          uuid.New().String(),
		Name:        name,
		IDNumber:    idNumber,
		PhoneNumber: phoneNumber,
		Email:       email,
		City:        city,
		District:    district,
		Sector:      sector,
		Cell:        cell,
		Village:     village,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
