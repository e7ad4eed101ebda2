package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/agro-dashboard/internal/domain/leader"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrLeaderNotFound = errors.New("líder de equipe não encontrado")
)

// LeaderRepository implementa a interface leader.Repository
type LeaderRepository struct {
	db *pgxpool.Pool
}

// NewLeaderRepository cria uma nova instância de LeaderRepository
func NewLeaderRepository(db *pgxpool.Pool) leader.Repository {
	return &LeaderRepository{
		db: db,
	}
}

// Create implementa leader.Repository.Create
func (r *LeaderRepository) Create(ctx context.Context, l *leader.Leader) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO team_leaders (
			id, name, id_number, phone_number, email, city, district, sector,
			cell, village, supervisor_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)`,
		l.ID, l.Name, l.IDNumber, l.PhoneNumber, l.Email, l.City, l.District,
		l.Sector, l.Cell, l.Village, l.SupervisorID, l.CreatedAt, l.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar líder de equipe: %w", err)
	}

	return nil
}

// FindByID implementa leader.Repository.FindByID
func (r *LeaderRepository) FindByID(ctx context.Context, id string) (*leader.Leader, error) {
	var l leader.Leader

	err := r.db.QueryRow(ctx,
		`SELECT
			id, name, id_number, phone_number, email, city, district, sector,
			cell, village, supervisor_id, created_at, updated_at
		FROM team_leaders WHERE id = $1`,
		id).Scan(
		&l.ID, &l.Name, &l.IDNumber, &l.PhoneNumber, &l.Email, &l.City,
		&l.District, &l.Sector, &l.Cell, &l.Village, &l.SupervisorID,
		&l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeaderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar líder de equipe: %w", err)
	}

	return &l, nil
}

// List implementa leader.Repository.List
func (r *LeaderRepository) List(ctx context.Context, filter listing.Filter, page int) ([]*leader.Leader, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, []string{"name"}, "created_at", "")

	query := `SELECT
			id, name, id_number, phone_number, email, city, district, sector,
			cell, village, supervisor_id, created_at, updated_at
		FROM team_leaders` +
		b.Clause() +
		` ORDER BY name ASC` + b.Paginate(page)

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar líderes de equipe: %w", err)
	}
	defer rows.Close()

	leaders := make([]*leader.Leader, 0)
	for rows.Next() {
		var l leader.Leader
		err := rows.Scan(
			&l.ID, &l.Name, &l.IDNumber, &l.PhoneNumber, &l.Email, &l.City,
			&l.District, &l.Sector, &l.Cell, &l.Village, &l.SupervisorID,
			&l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler líder de equipe: %w", err)
		}
		leaders = append(leaders, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer líderes de equipe: %w", err)
	}

	return leaders, nil
}

// Count implementa leader.Repository.Count
func (r *LeaderRepository) Count(ctx context.Context, filter listing.Filter) (int, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, []string{"name"}, "created_at", "")

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM team_leaders`+b.Clause(), b.Args()...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar líderes de equipe: %w", err)
	}

	return count, nil
}

// ListOptions implementa leader.Repository.ListOptions
func (r *LeaderRepository) ListOptions(ctx context.Context) ([]leader.Option, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM team_leaders ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar opções de líderes: %w", err)
	}
	defer rows.Close()

	options := make([]leader.Option, 0)
	for rows.Next() {
		var o leader.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("erro ao ler opção de líder: %w", err)
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

// Update implementa leader.Repository.Update
func (r *LeaderRepository) Update(ctx context.Context, l *leader.Leader) error {
	result, err := r.db.Exec(ctx,
		`UPDATE team_leaders SET
			name = $1, id_number = $2, phone_number = $3, email = $4,
			city = $5, district = $6, sector = $7, cell = $8, village = $9,
			supervisor_id = $10, updated_at = $11
		WHERE id = $12`,
		l.Name, l.IDNumber, l.PhoneNumber, l.Email, l.City, l.District,
		l.Sector, l.Cell, l.Village, l.SupervisorID, l.UpdatedAt, l.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar líder de equipe: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrLeaderNotFound
	}

	return nil
}

// Delete implementa leader.Repository.Delete
func (r *LeaderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM team_leaders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover líder de equipe: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrLeaderNotFound
	}

	return nil
}
