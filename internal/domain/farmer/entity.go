package farmer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome do produtor não pode ser vazio")
	ErrInvalidArea   = errors.New("área deve ser maior que zero")
	ErrEmptyLeader   = errors.New("líder de equipe é obrigatório")
	ErrEmptyIDNumber = errors.New("número de identidade é obrigatório")
)

// Farmer representa um produtor rural cadastrado no painel
type Farmer struct {
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
	TeamLeaderID string    `json:"team_leader_id"`
	Area         float64   `json:"area"` // área cultivada em hectares
	SeasonID     *string   `json:"season_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListRow é a linha da listagem de produtores, com o total de entradas de
// estoque agregado por produtor (resolvido por JOIN na consulta)
type ListRow struct {
	Farmer
	TotalGoods float64 `json:"total_goods"`
}

// NewFarmer cria um novo produtor
func NewFarmer(name, idNumber, phoneNumber, email, city, district, sector, cell, village, teamLeaderID string, area float64, seasonID *string) (*Farmer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if idNumber == "" {
		return nil, ErrEmptyIDNumber
	}
	if teamLeaderID == "" {
		return nil, ErrEmptyLeader
	}
	if area <= 0 {
		return nil, ErrInvalidArea
	}

	now := time.Now()
	return &Farmer{
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
		TeamLeaderID: teamLeaderID,
		Area:         area,
		SeasonID:     seasonID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
