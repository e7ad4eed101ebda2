package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/agro-dashboard/internal/domain/invoice"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrInvoiceNotFound = errors.New("fatura não encontrada")
)

// Colunas pesquisadas pela busca textual da listagem de faturas. Valor e
// data entram como texto para permitir busca por substring.
var invoiceSearchColumns = []string{
	"f.name",
	"f.email",
	"(i.amount_cents / 100.0)::text",
	"i.date::text",
	"i.status",
}

// InvoiceRepository implementa a interface invoice.Repository
type InvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository cria uma nova instância de InvoiceRepository
func NewInvoiceRepository(db *pgxpool.Pool) invoice.Repository {
	return &InvoiceRepository{
		db: db,
	}
}

// Create implementa invoice.Repository.Create
func (r *InvoiceRepository) Create(ctx context.Context, i *invoice.Invoice) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO invoices (
			id, farmer_id, amount_cents, status, date, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`,
		i.ID, i.FarmerID, i.AmountCents, i.Status, i.Date, i.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar fatura: %w", err)
	}

	return nil
}

// FindByID implementa invoice.Repository.FindByID
func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	var i invoice.Invoice

	err := r.db.QueryRow(ctx,
		`SELECT id, farmer_id, amount_cents, status, date, created_at
		FROM invoices WHERE id = $1`,
		id).Scan(&i.ID, &i.FarmerID, &i.AmountCents, &i.Status, &i.Date, &i.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fatura: %w", err)
	}

	return &i, nil
}

// selectInvoices monta a consulta de linhas de fatura sob o filtro, com ou
// sem paginação. O filtro de safra usa a safra do produtor da fatura.
func (r *InvoiceRepository) selectInvoices(ctx context.Context, filter listing.Filter, page int, paginate bool) ([]*invoice.ListRow, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, invoiceSearchColumns, "i.date", "f.season_id")

	query := `SELECT
			i.id, i.farmer_id, i.amount_cents, i.status, i.date, i.created_at,
			f.name AS farmer_name, f.email AS farmer_email
		FROM invoices i
		JOIN farmers f ON f.id = i.farmer_id` +
		b.Clause() +
		` ORDER BY i.date DESC`
	if paginate {
		query += b.Paginate(page)
	}

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar faturas: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

// List implementa invoice.Repository.List
func (r *InvoiceRepository) List(ctx context.Context, filter listing.Filter, page int) ([]*invoice.ListRow, error) {
	return r.selectInvoices(ctx, filter, page, true)
}

// ListAll implementa invoice.Repository.ListAll
func (r *InvoiceRepository) ListAll(ctx context.Context, filter listing.Filter) ([]*invoice.ListRow, error) {
	return r.selectInvoices(ctx, filter, 0, false)
}

// Count implementa invoice.Repository.Count
func (r *InvoiceRepository) Count(ctx context.Context, filter listing.Filter) (int, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, invoiceSearchColumns, "i.date", "f.season_id")

	query := `SELECT COUNT(*)
		FROM invoices i
		JOIN farmers f ON f.id = i.farmer_id` + b.Clause()

	var count int
	if err := r.db.QueryRow(ctx, query, b.Args()...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar faturas: %w", err)
	}

	return count, nil
}

// Latest implementa invoice.Repository.Latest
func (r *InvoiceRepository) Latest(ctx context.Context, limit int) ([]*invoice.ListRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT
			i.id, i.farmer_id, i.amount_cents, i.status, i.date, i.created_at,
			f.name AS farmer_name, f.email AS farmer_email
		FROM invoices i
		JOIN farmers f ON f.id = i.farmer_id
		ORDER BY i.date DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar faturas recentes: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

func scanInvoiceRows(rows pgx.Rows) ([]*invoice.ListRow, error) {
	invoices := make([]*invoice.ListRow, 0)
	for rows.Next() {
		var row invoice.ListRow
		err := rows.Scan(
			&row.ID, &row.FarmerID, &row.AmountCents, &row.Status, &row.Date,
			&row.CreatedAt, &row.FarmerName, &row.FarmerEmail)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler fatura: %w", err)
		}
		invoices = append(invoices, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer faturas: %w", err)
	}

	return invoices, nil
}

// Update implementa invoice.Repository.Update
func (r *InvoiceRepository) Update(ctx context.Context, i *invoice.Invoice) error {
	result, err := r.db.Exec(ctx,
		`UPDATE invoices SET
			farmer_id = $1, amount_cents = $2, status = $3, date = $4
		WHERE id = $5`,
		i.FarmerID, i.AmountCents, i.Status, i.Date, i.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar fatura: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

// Delete implementa invoice.Repository.Delete
func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover fatura: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}
