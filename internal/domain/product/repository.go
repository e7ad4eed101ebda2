package product

import (
	"context"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// Option é o par (id, nome) usado em campos de seleção
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista os produtos paginados; o texto do filtro pesquisa o nome
	List(ctx context.Context, filter listing.Filter, page int) ([]*Product, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	ListOptions(ctx context.Context) ([]Option, error)

	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
