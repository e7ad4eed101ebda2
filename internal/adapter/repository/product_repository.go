package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/agro-dashboard/internal/domain/product"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrProductNotFound = errors.New("produto não encontrado")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, purchase_unit_price, sale_unit_price, unit, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`,
		p.ID, p.Name, p.PurchaseUnitPrice, p.SaleUnitPrice, p.Unit,
		p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product

	err := r.db.QueryRow(ctx,
		`SELECT id, name, purchase_unit_price, sale_unit_price, unit, created_at, updated_at
		FROM products WHERE id = $1`,
		id).Scan(
		&p.ID, &p.Name, &p.PurchaseUnitPrice, &p.SaleUnitPrice, &p.Unit,
		&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, filter listing.Filter, page int) ([]*product.Product, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, []string{"name"}, "created_at", "")

	query := `SELECT id, name, purchase_unit_price, sale_unit_price, unit, created_at, updated_at
		FROM products` +
		b.Clause() +
		` ORDER BY name ASC` + b.Paginate(page)

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		var p product.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.PurchaseUnitPrice, &p.SaleUnitPrice, &p.Unit,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}

	return products, nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, filter listing.Filter) (int, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, []string{"name"}, "created_at", "")

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+b.Clause(), b.Args()...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// ListOptions implementa product.Repository.ListOptions
func (r *ProductRepository) ListOptions(ctx context.Context) ([]product.Option, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar opções de produtos: %w", err)
	}
	defer rows.Close()

	options := make([]product.Option, 0)
	for rows.Next() {
		var o product.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("erro ao ler opção de produto: %w", err)
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, purchase_unit_price = $2, sale_unit_price = $3,
			unit = $4, updated_at = $5
		WHERE id = $6`,
		p.Name, p.PurchaseUnitPrice, p.SaleUnitPrice, p.Unit, p.UpdatedAt, p.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}
