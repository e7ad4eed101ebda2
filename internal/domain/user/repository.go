package user

import (
	"context"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista os usuários filtrando por nome, email ou perfil
	List(ctx context.Context, filter listing.Filter, page int) ([]*User, error)

	// Count conta os usuários que atendem ao filtro
	Count(ctx context.Context, filter listing.Filter) (int, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// Delete remove um usuário
	Delete(ctx context.Context, id string) error
}
