package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/user"
)

// UserRequest representa a requisição de criação de usuário
type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=9"`
	Role     string `json:"role" binding:"required,oneof=admin user accountant"`
}

// UserUpdateRequest representa a requisição de atualização de usuário.
// A senha só é alterada quando informada.
type UserUpdateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=9"`
	Role     string `json:"role" binding:"required,oneof=admin user accountant"`
}

// UserResponse representa a resposta de usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse representa a resposta de lista de usuários
type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToUserResponse converte um usuário do domínio para o formato de resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de usuários do domínio
func ToUserResponses(users []*user.User) []UserResponse {
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, ToUserResponse(u))
	}
	return items
}
