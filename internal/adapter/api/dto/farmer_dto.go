package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/farmer"
)

// FarmerRequest representa a requisição de produtor
type FarmerRequest struct {
	Name         string  `json:"name" binding:"required"`
	IDNumber     string  `json:"id_number" binding:"required"`
	PhoneNumber  string  `json:"phone_number"`
	Email        string  `json:"email"`
	City         string  `json:"city"`
	District     string  `json:"district"`
	Sector       string  `json:"sector"`
	Cell         string  `json:"cell"`
	Village      string  `json:"village"`
	TeamLeaderID string  `json:"team_leader_id" binding:"required"`
	Area         float64 `json:"area" binding:"required,gt=0"`
	SeasonID     *string `json:"season_id"`
}

// FarmerResponse representa a resposta de produtor
type FarmerResponse struct {
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
	Area         float64   `json:"area"`
	SeasonID     *string   `json:"season_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FarmerListItem representa um produtor na listagem, com o total de
// entregas de estoque
type FarmerListItem struct {
	FarmerResponse
	TotalGoods float64 `json:"total_goods"`
}

// FarmerListResponse representa a resposta de lista de produtores
type FarmerListResponse struct {
	Items      []FarmerListItem `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToFarmerResponse converte um produtor do domínio para o formato de resposta
func ToFarmerResponse(f *farmer.Farmer) FarmerResponse {
	return FarmerResponse{
		ID:           f.ID,
		Name:         f.Name,
		IDNumber:     f.IDNumber,
		PhoneNumber:  f.PhoneNumber,
		Email:        f.Email,
		City:         f.City,
		District:     f.District,
		Sector:       f.Sector,
		Cell:         f.Cell,
		Village:      f.Village,
		TeamLeaderID: f.TeamLeaderID,
		Area:         f.Area,
		SeasonID:     f.SeasonID,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// ToFarmerListItems converte as linhas da listagem de produtores
func ToFarmerListItems(rows []*farmer.ListRow) []FarmerListItem {
	items := make([]FarmerListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, FarmerListItem{
			FarmerResponse: ToFarmerResponse(&row.Farmer),
			TotalGoods:     row.TotalGoods,
		})
	}
	return items
}
