package leader

import (
	"context"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// Option é o par (id, nome) usado em campos de seleção
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Repository define a interface para operações de repositório de líderes
type Repository interface {
	Create(ctx context.Context, l *Leader) error
	FindByID(ctx context.Context, id string) (*Leader, error)

	// List lista os líderes paginados; o texto do filtro pesquisa o nome
	List(ctx context.Context, filter listing.Filter, page int) ([]*Leader, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	ListOptions(ctx context.Context) ([]Option, error)

	Update(ctx context.Context, l *Leader) error
	Delete(ctx context.Context, id string) error
}
