package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/leader"
)

// LeaderRequest representa a requisição de líder de equipe
type LeaderRequest struct {
	Name         string `json:"name" binding:"required"`
	IDNumber     string `json:"id_number" binding:"required,min=10"`
	PhoneNumber  string `json:"phone_number" binding:"required,min=8"`
	Email        string `json:"email"`
	City         string `json:"city"`
	District     string `json:"district"`
	Sector       string `json:"sector"`
	Cell         string `json:"cell"`
	Village      string `json:"village"`
	SupervisorID string `json:"supervisor_id" binding:"required"`
}

// LeaderResponse representa a resposta de líder de equipe
type LeaderResponse struct {
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

// LeaderListResponse representa a resposta de lista de líderes de equipe
type LeaderListResponse struct {
	Items      []LeaderResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToLeaderResponse converte um líder do domínio para o formato de resposta
func ToLeaderResponse(l *leader.Leader) LeaderResponse {
	return LeaderResponse{
		ID:           l.ID,
		Name:         l.Name,
		IDNumber:     l.IDNumber,
		PhoneNumber:  l.PhoneNumber,
		Email:        l.Email,
		City:         l.City,
		District:     l.District,
		Sector:       l.Sector,
		Cell:         l.Cell,
		Village:      l.Village,
		SupervisorID: l.SupervisorID,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// ToLeaderResponses converte uma lista de líderes do domínio
func ToLeaderResponses(leaders []*leader.Leader) []LeaderResponse {
	items := make([]LeaderResponse, 0, len(leaders))
	for _, l := range leaders {
		items = append(items, ToLeaderResponse(l))
	}
	return items
}
