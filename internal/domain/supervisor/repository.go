package supervisor

import (
	"context"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// Option é o par (id, nome) usado em campos de seleção
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Repository define a interface para operações de repositório de supervisores
type Repository interface {
	Create(ctx context.Context, s *Supervisor) error
	FindByID(ctx context.Context, id string) (*Supervisor, error)
	List(ctx context.Context, filter listing.Filter, page int) ([]*Supervisor, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	ListOptions(ctx context.Context) ([]Option, error)
	Update(ctx context.Context, s *Supervisor) error
	Delete(ctx context.Context, id string) error
}
