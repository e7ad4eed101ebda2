package stock

import (
	"context"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// ReceiptRepository define a interface para operações sobre entradas de estoque
type ReceiptRepository interface {
	Create(ctx context.Context, r *Receipt) error
	FindByID(ctx context.Context, id string) (*Receipt, error)

	// List lista as entradas paginadas ordenadas pelo nome do fornecedor.
	// O texto do filtro pesquisa nome do fornecedor e do produto; safra e
	// intervalo de datas combinam por AND quando presentes.
	List(ctx context.Context, filter listing.Filter, page int) ([]*ReceiptRow, error)

	// ListAll aplica o mesmo filtro de List sem paginação, para exportação.
	// O conjunto de colunas pesquisadas é idêntico ao da variante paginada.
	ListAll(ctx context.Context, filter listing.Filter) ([]*ReceiptRow, error)

	Count(ctx context.Context, filter listing.Filter) (int, error)
	Update(ctx context.Context, r *Receipt) error
	Delete(ctx context.Context, id string) error
}

// IssueRepository define a interface para operações sobre saídas de estoque
type IssueRepository interface {
	Create(ctx context.Context, i *Issue) error
	FindByID(ctx context.Context, id string) (*Issue, error)

	// List lista as saídas paginadas ordenadas pelo nome do cliente.
	// O texto do filtro pesquisa nome do cliente e do produto.
	List(ctx context.Context, filter listing.Filter, page int) ([]*IssueRow, error)

	// ListAll aplica o mesmo filtro de List sem paginação, para exportação
	ListAll(ctx context.Context, filter listing.Filter) ([]*IssueRow, error)

	Count(ctx context.Context, filter listing.Filter) (int, error)
	Update(ctx context.Context, i *Issue) error
	Delete(ctx context.Context, id string) error
}
