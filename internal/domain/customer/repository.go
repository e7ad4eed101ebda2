package customer

import (
	"context"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// Option é o par (id, nome) usado em campos de seleção
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id string) (*Customer, error)

	// List lista os clientes paginados com o total de vendas e o valor pago
	// agregados por cliente; o texto do filtro pesquisa nome e email
	List(ctx context.Context, filter listing.Filter, page int) ([]*ListRow, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	ListOptions(ctx context.Context) ([]Option, error)

	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id string) error
}
