package season

import "context"

// Repository define a interface para operações de repositório de safras
type Repository interface {
	// Create cria uma nova safra
	Create(ctx context.Context, s *Season) error

	// FindByID busca uma safra pelo ID
	FindByID(ctx context.Context, id string) (*Season, error)

	// FindPrevious busca a safra imediatamente anterior pela data de início.
	// Retorna nil (sem erro) quando não existe safra anterior.
	FindPrevious(ctx context.Context, s *Season) (*Season, error)

	// List lista todas as safras ordenadas pela data de início decrescente
	List(ctx context.Context) ([]*Season, error)

	// Update atualiza os dados de uma safra existente
	Update(ctx context.Context, s *Season) error

	// Delete remove uma safra. Registros que a referenciam não são
	// alterados nem removidos em cascata.
	Delete(ctx context.Context, id string) error
}
