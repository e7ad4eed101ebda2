package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/agro-dashboard/internal/domain/supervisor"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSupervisorNotFound = errors.New("supervisor não encontrado")
)

// SupervisorRepository implementa a interface supervisor.Repository
type SupervisorRepository struct {
	db *pgxpool.Pool
}

// NewSupervisorRepository cria uma nova instância de SupervisorRepository
func NewSupervisorRepository(db *pgxpool.Pool) supervisor.Repository {
	return &SupervisorRepository{
		db: db,
	}
}

// Create implementa supervisor.Repository.Create
func (r *SupervisorRepository) Create(ctx context.Context, s *supervisor.Supervisor) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO supervisors (
			id, name, id_number, phone_number, email, city, district, sector,
			cell, village, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)`,
		s.ID, s.Name, s.IDNumber, s.PhoneNumber, s.Email, s.City, s.District,
		s.Sector, s.Cell, s.Village, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar supervisor: %w", err)
	}

	return nil
}

// FindByID implementa supervisor.Repository.FindByID
func (r *SupervisorRepository) FindByID(ctx context.Context, id string) (*supervisor.Supervisor, error) {
	var s supervisor.Supervisor

	err := r.db.QueryRow(ctx,
		`SELECT
			id, name, id_number, phone_number, email, city, district, sector,
			cell, village, created_at, updated_at
		FROM supervisors WHERE id = $1`,
		id).Scan(
		&s.ID, &s.Name, &s.IDNumber, &s.PhoneNumber, &s.Email, &s.City,
		&s.District, &s.Sector, &s.Cell, &s.Village, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupervisorNotFound
		}
		return nil, fmt.Errorf("erro ao buscar supervisor: %w", err)
	}

	return &s, nil
}

// List implementa supervisor.Repository.List
func (r *SupervisorRepository) List(ctx context.Context, filter listing.Filter, page int) ([]*supervisor.Supervisor, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, []string{"name"}, "created_at", "")

	query := `SELECT
			id, name, id_number, phone_number, email, city, district, sector,
			cell, village, created_at, updated_at
		FROM supervisors` +
		b.Clause() +
		` ORDER BY name ASC` + b.Paginate(page)

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar supervisores: %w", err)
	}
	defer rows.Close()

	supervisors := make([]*supervisor.Supervisor, 0)
	for rows.Next() {
		var s supervisor.Supervisor
		err := rows.Scan(
			&s.ID, &s.Name, &s.IDNumber, &s.PhoneNumber, &s.Email, &s.City,
			&s.District, &s.Sector, &s.Cell, &s.Village, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler supervisor: %w", err)
		}
		supervisors = append(supervisors, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer supervisores: %w", err)
	}

	return supervisors, nil
}

// Count implementa supervisor.Repository.Count
func (r *SupervisorRepository) Count(ctx context.Context, filter listing.Filter) (int, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, []string{"name"}, "created_at", "")

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM supervisors`+b.Clause(), b.Args()...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar supervisores: %w", err)
	}

	return count, nil
}

// ListOptions implementa supervisor.Repository.ListOptions
func (r *SupervisorRepository) ListOptions(ctx context.Context) ([]supervisor.Option, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM supervisors ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar opções de supervisores: %w", err)
	}
	defer rows.Close()

	options := make([]supervisor.Option, 0)
	for rows.Next() {
		var o supervisor.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("erro ao ler opção de supervisor: %w", err)
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

// Update implementa supervisor.Repository.Update
func (r *SupervisorRepository) Update(ctx context.Context, s *supervisor.Supervisor) error {
	result, err := r.db.Exec(ctx,
		`UPDATE supervisors SET
			name = $1, id_number = $2, phone_number = $3, email = $4,
			city = $5, district = $6, sector = $7, cell = $8, village = $9,
			updated_at = $10
		WHERE id = $11`,
		s.Name, s.IDNumber, s.PhoneNumber, s.Email, s.City, s.District,
		s.Sector, s.Cell, s.Village, s.UpdatedAt, s.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar supervisor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSupervisorNotFound
	}

	return nil
}

// Delete implementa supervisor.Repository.Delete
func (r *SupervisorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM supervisors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover supervisor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSupervisorNotFound
	}

	return nil
}
