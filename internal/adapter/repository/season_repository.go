package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/agro-dashboard/internal/domain/season"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSeasonNotFound = errors.New("safra não encontrada")
)

// SeasonRepository implementa a interface season.Repository
type SeasonRepository struct {
	db *pgxpool.Pool
}

// NewSeasonRepository cria uma nova instância de SeasonRepository
func NewSeasonRepository(db *pgxpool.Pool) season.Repository {
	return &SeasonRepository{
		db: db,
	}
}

// Create implementa season.Repository.Create
func (r *SeasonRepository) Create(ctx context.Context, s *season.Season) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO seasons (
			id, name, start_date, end_date, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`,
		s.ID, s.Name, s.StartDate, s.EndDate, s.Status, s.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar safra: %w", err)
	}

	return nil
}

// FindByID implementa season.Repository.FindByID
func (r *SeasonRepository) FindByID(ctx context.Context, id string) (*season.Season, error) {
	var s season.Season

	err := r.db.QueryRow(ctx,
		`SELECT id, name, start_date, end_date, status, created_at
		FROM seasons WHERE id = $1`,
		id).Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Status, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("erro ao buscar safra: %w", err)
	}

	return &s, nil
}

// FindPrevious implementa season.Repository.FindPrevious
func (r *SeasonRepository) FindPrevious(ctx context.Context, s *season.Season) (*season.Season, error) {
	var prev season.Season

	err := r.db.QueryRow(ctx,
		`SELECT id, name, start_date, end_date, status, created_at
		FROM seasons
		WHERE start_date < $1 AND id <> $2
		ORDER BY start_date DESC
		LIMIT 1`,
		s.StartDate, s.ID).Scan(
		&prev.ID, &prev.Name, &prev.StartDate, &prev.EndDate, &prev.Status, &prev.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Primeira safra cadastrada não tem anterior
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar safra anterior: %w", err)
	}

	return &prev, nil
}

// List implementa season.Repository.List
func (r *SeasonRepository) List(ctx context.Context) ([]*season.Season, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, start_date, end_date, status, created_at
		FROM seasons ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar safras: %w", err)
	}
	defer rows.Close()

	seasons := make([]*season.Season, 0)
	for rows.Next() {
		var s season.Season
		err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Status, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler safra: %w", err)
		}
		seasons = append(seasons, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer safras: %w", err)
	}

	return seasons, nil
}

// Update implementa season.Repository.Update
func (r *SeasonRepository) Update(ctx context.Context, s *season.Season) error {
	result, err := r.db.Exec(ctx,
		`UPDATE seasons SET
			name = $1, start_date = $2, end_date = $3, status = $4
		WHERE id = $5`,
		s.Name, s.StartDate, s.EndDate, s.Status, s.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar safra: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSeasonNotFound
	}

	return nil
}

// Delete implementa season.Repository.Delete. As tabelas que referenciam a
// safra usam ON DELETE SET NULL, então os registros permanecem.
func (r *SeasonRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM seasons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover safra: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSeasonNotFound
	}

	return nil
}
