package farmer

import (
	"context"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// Repository define a interface para operações de repositório de produtores
type Repository interface {
	// Create cria um novo produtor
	Create(ctx context.Context, f *Farmer) error

	// FindByID busca um produtor pelo ID
	FindByID(ctx context.Context, id string) (*Farmer, error)

	// List lista os produtores paginados com o total de entradas de estoque
	// por produtor. O texto do filtro pesquisa nome, email, cidade,
	// distrito e setor; a safra e o intervalo de datas (data de cadastro)
	// combinam por AND quando presentes.
	List(ctx context.Context, filter listing.Filter, page int) ([]*ListRow, error)

	// Count conta os produtores que atendem ao filtro
	Count(ctx context.Context, filter listing.Filter) (int, error)

	// ListOptions retorna pares (id, nome) ordenados por nome para seleção
	// em formulários
	ListOptions(ctx context.Context) ([]Option, error)

	// Update atualiza os dados de um produtor existente
	Update(ctx context.Context, f *Farmer) error

	// Delete remove um produtor
	Delete(ctx context.Context, id string) error
}

// Option é o par (id, nome) usado em campos de seleção
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
