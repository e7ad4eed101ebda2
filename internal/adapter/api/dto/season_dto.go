package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/season"
)

// SeasonRequest representa a requisição de safra
type SeasonRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Status    string    `json:"status"`
}

// SeasonResponse representa a resposta de safra
type SeasonResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
	DaysRemaining int       `json:"days_remaining"`
	CreatedAt     time.Time `json:"created_at"`
}

// SeasonListResponse representa a resposta de lista de safras
type SeasonListResponse struct {
	Items []SeasonResponse `json:"items"`
	Total int              `json:"total"`
}

// ToSeasonResponse converte uma safra do domínio para o formato de resposta
func ToSeasonResponse(s *season.Season) SeasonResponse {
	return SeasonResponse{
		ID:            s.ID,
		Name:          s.Name,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		Status:        string(s.Status),
		DaysRemaining: s.DaysRemaining(time.Now()),
		CreatedAt:     s.CreatedAt,
	}
}

// ToSeasonResponses converte uma lista de safras do domínio
func ToSeasonResponses(seasons []*season.Season) []SeasonResponse {
	items := make([]SeasonResponse, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, ToSeasonResponse(s))
	}
	return items
}
