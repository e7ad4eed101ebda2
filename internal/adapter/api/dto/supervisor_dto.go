package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/supervisor"
)

// SupervisorRequest representa a requisição de supervisor
type SupervisorRequest struct {
	Name        string `json:"name" binding:"required"`
	IDNumber    string `json:"id_number" binding:"required,min=8"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	City        string `json:"city"`
	District    string `json:"district"`
	Sector      string `json:"sector"`
	Cell        string `json:"cell"`
	Village     string `json:"village"`
}

// SupervisorResponse representa a resposta de supervisor
type SupervisorResponse struct {
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

// SupervisorListResponse representa a resposta de lista de supervisores
type SupervisorListResponse struct {
	Items      []SupervisorResponse `json:"items"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalPages int                  `json:"total_pages"`
}

// ToSupervisorResponse converte um supervisor do domínio para o formato de resposta
func ToSupervisorResponse(s *supervisor.Supervisor) SupervisorResponse {
	return SupervisorResponse{
		ID:          s.ID,
		Name:        s.Name,
		IDNumber:    s.IDNumber,
		PhoneNumber: s.PhoneNumber,
		Email:       s.Email,
		City:        s.City,
		District:    s.District,
		Sector:      s.Sector,
		Cell:        s.Cell,
		Village:     s.Village,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSupervisorResponses converte uma lista de supervisores do domínio
func ToSupervisorResponses(supervisors []*supervisor.Supervisor) []SupervisorResponse {
	items := make([]SupervisorResponse, 0, len(supervisors))
	for _, s := range supervisors {
		items = append(items, ToSupervisorResponse(s))
	}
	return items
}
