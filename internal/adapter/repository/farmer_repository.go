package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/agro-dashboard/internal/domain/farmer"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrFarmerNotFound = errors.New("produtor não encontrado")
)

// Colunas pesquisadas pela busca textual da listagem de produtores
var farmerSearchColumns = []string{"f.name", "f.email", "f.city", "f.district", "f.sector"}

// FarmerRepository implementa a interface farmer.Repository
type FarmerRepository struct {
	db *pgxpool.Pool
}

// NewFarmerRepository cria uma nova instância de FarmerRepository
func NewFarmerRepository(db *pgxpool.Pool) farmer.Repository {
	return &FarmerRepository{
		db: db,
	}
}

// Create implementa farmer.Repository.Create
func (r *FarmerRepository) Create(ctx context.Context, f *farmer.Farmer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO farmers (
			id, name, id_number, phone_number, email, city, district, sector,
			cell, village, team_leader_id, area, season_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)`,
		f.ID, f.Name, f.IDNumber, f.PhoneNumber, f.Email, f.City, f.District,
		f.Sector, f.Cell, f.Village, f.TeamLeaderID, f.Area, f.SeasonID,
		f.CreatedAt, f.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar produtor: %w", err)
	}

	return nil
}

// FindByID implementa farmer.Repository.FindByID
func (r *FarmerRepository) FindByID(ctx context.Context, id string) (*farmer.Farmer, error) {
	var f farmer.Farmer

	err := r.db.QueryRow(ctx,
		`SELECT
			id, name, id_number, phone_number, email, city, district, sector,
			cell, village, team_leader_id, area, season_id, created_at, updated_at
		FROM farmers WHERE id = $1`,
		id).Scan(
		&f.ID, &f.Name, &f.IDNumber, &f.PhoneNumber, &f.Email, &f.City,
		&f.District, &f.Sector, &f.Cell, &f.Village, &f.TeamLeaderID,
		&f.Area, &f.SeasonID, &f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFarmerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produtor: %w", err)
	}

	return &f, nil
}

// List implementa farmer.Repository.List
func (r *FarmerRepository) List(ctx context.Context, filter listing.Filter, page int) ([]*farmer.ListRow, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, farmerSearchColumns, "f.created_at", "f.season_id")

	query := `SELECT
			f.id, f.name, f.id_number, f.phone_number, f.email, f.city,
			f.district, f.sector, f.cell, f.village, f.team_leader_id,
			f.area, f.season_id, f.created_at, f.updated_at,
			COALESCE(SUM(g.quantity), 0) AS total_goods
		FROM farmers f
		LEFT JOIN goods g ON g.farmer_id = f.id` +
		b.Clause() +
		` GROUP BY f.id ORDER BY f.name ASC` + b.Paginate(page)

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtores: %w", err)
	}
	defer rows.Close()

	farmers := make([]*farmer.ListRow, 0)
	for rows.Next() {
		var row farmer.ListRow
		err := rows.Scan(
			&row.ID, &row.Name, &row.IDNumber, &row.PhoneNumber, &row.Email,
			&row.City, &row.District, &row.Sector, &row.Cell, &row.Village,
			&row.TeamLeaderID, &row.Area, &row.SeasonID, &row.CreatedAt,
			&row.UpdatedAt, &row.TotalGoods)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produtor: %w", err)
		}
		farmers = append(farmers, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtores: %w", err)
	}

	return farmers, nil
}

// Count implementa farmer.Repository.Count
func (r *FarmerRepository) Count(ctx context.Context, filter listing.Filter) (int, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, farmerSearchColumns, "f.created_at", "f.season_id")

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM farmers f`+b.Clause(), b.Args()...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtores: %w", err)
	}

	return count, nil
}

// ListOptions implementa farmer.Repository.ListOptions
func (r *FarmerRepository) ListOptions(ctx context.Context) ([]farmer.Option, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM farmers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar opções de produtores: %w", err)
	}
	defer rows.Close()

	options := make([]farmer.Option, 0)
	for rows.Next() {
		var o farmer.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("erro ao ler opção de produtor: %w", err)
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

// Update implementa farmer.Repository.Update
func (r *FarmerRepository) Update(ctx context.Context, f *farmer.Farmer) error {
	result, err := r.db.Exec(ctx,
		`UPDATE farmers SET
			name = $1, id_number = $2, phone_number = $3, email = $4,
			city = $5, district = $6, sector = $7, cell = $8, village = $9,
			team_leader_id = $10, area = $11, season_id = $12, updated_at = $13
		WHERE id = $14`,
		f.Name, f.IDNumber, f.PhoneNumber, f.Email, f.City, f.District,
		f.Sector, f.Cell, f.Village, f.TeamLeaderID, f.Area, f.SeasonID,
		f.UpdatedAt, f.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produtor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrFarmerNotFound
	}

	return nil
}

// Delete implementa farmer.Repository.Delete
func (r *FarmerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM farmers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produtor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrFarmerNotFound
	}

	return nil
}
