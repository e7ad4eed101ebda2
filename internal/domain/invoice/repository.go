package invoice

import (
	"context"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// Repository define a interface para operações de repositório de faturas
type Repository interface {
	Create(ctx context.Context, i *Invoice) error
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// List lista as faturas paginadas em ordem cronológica inversa. O texto
	// do filtro pesquisa nome e email do produtor, o valor e a data como
	// texto, e o status; o intervalo de datas cobre a data da fatura e a
	// safra filtra pela safra do produtor.
	List(ctx context.Context, filter listing.Filter, page int) ([]*ListRow, error)

	// ListAll aplica o mesmo filtro de List sem paginação, para exportação
	ListAll(ctx context.Context, filter listing.Filter) ([]*ListRow, error)

	Count(ctx context.Context, filter listing.Filter) (int, error)

	// Latest retorna as faturas mais recentes para o painel
	Latest(ctx context.Context, limit int) ([]*ListRow, error)

	Update(ctx context.Context, i *Invoice) error
	Delete(ctx context.Context, id string) error
}
