package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/agro-dashboard/internal/domain/customer"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (
			id, name, email, image_url, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`,
		c.ID, c.Name, c.Email, c.ImageURL, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer

	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, image_url, created_at, updated_at
		FROM customers WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// List implementa customer.Repository.List. Os totais agregados consideram
// as vendas do cliente valoradas pelo preço unitário de venda do produto.
func (r *CustomerRepository) List(ctx context.Context, filter listing.Filter, page int) ([]*customer.ListRow, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, []string{"c.name", "c.email"}, "c.created_at", "")

	query := `SELECT
			c.id, c.name, c.email, c.image_url, c.created_at, c.updated_at,
			COUNT(s.id) AS total_invoices,
			COALESCE(SUM(s.quantity * p.sale_unit_price), 0) AS total_paid
		FROM customers c
		LEFT JOIN sales s ON s.customer_id = c.id
		LEFT JOIN products p ON p.id = s.product_id` +
		b.Clause() +
		` GROUP BY c.id ORDER BY c.name ASC` + b.Paginate(page)

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*customer.ListRow, 0)
	for rows.Next() {
		var row customer.ListRow
		err := rows.Scan(
			&row.ID, &row.Name, &row.Email, &row.ImageURL, &row.CreatedAt,
			&row.UpdatedAt, &row.TotalInvoices, &row.TotalPaid)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer clientes: %w", err)
	}

	return customers, nil
}

// Count implementa customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context, filter listing.Filter) (int, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, []string{"c.name", "c.email"}, "c.created_at", "")

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers c`+b.Clause(), b.Args()...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// ListOptions implementa customer.Repository.ListOptions
func (r *CustomerRepository) ListOptions(ctx context.Context) ([]customer.Option, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar opções de clientes: %w", err)
	}
	defer rows.Close()

	options := make([]customer.Option, 0)
	for rows.Next() {
		var o customer.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("erro ao ler opção de cliente: %w", err)
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result, err := r.db.Exec(ctx,
		`UPDATE customers SET
			name = $1, email = $2, image_url = $3, updated_at = $4
		WHERE id = $5`,
		c.Name, c.Email, c.ImageURL, c.UpdatedAt, c.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
