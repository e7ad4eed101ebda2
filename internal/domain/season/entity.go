package season

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("nome da safra não pode ser vazio")
	ErrEmptyPeriod = errors.New("datas de início e fim são obrigatórias")
)

// Status representa o estado da safra
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Season representa uma safra (período de plantio/colheita)
type Season struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSeason cria uma nova safra
func NewSeason(name string, startDate, endDate time.Time, status Status) (*Season, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, ErrEmptyPeriod
	}
	if status != StatusActive {
		status = StatusInactive
	}

	return &Season{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
		CreatedAt: time.Now(),
	}, nil
}

// DaysRemaining retorna quantos dias faltam até o fim da safra em relação
// ao instante informado. Safras já encerradas retornam zero.
func (s *Season) DaysRemaining(now time.Time) int {
	diff := s.EndDate.Sub(now)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}
