package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/agro-dashboard/internal/domain/stock"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrReceiptNotFound = errors.New("entrada de estoque não encontrada")
	ErrIssueNotFound   = errors.New("saída de estoque não encontrada")
)

// Colunas pesquisadas pela busca textual das listagens de estoque
var (
	receiptSearchColumns = []string{"f.name", "p.name"}
	issueSearchColumns   = []string{"c.name", "p.name"}
)

// ReceiptRepository implementa a interface stock.ReceiptRepository
type ReceiptRepository struct {
	db *pgxpool.Pool
}

// NewReceiptRepository cria uma nova instância de ReceiptRepository
func NewReceiptRepository(db *pgxpool.Pool) stock.ReceiptRepository {
	return &ReceiptRepository{
		db: db,
	}
}

// Create implementa stock.ReceiptRepository.Create
func (r *ReceiptRepository) Create(ctx context.Context, rec *stock.Receipt) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO goods (
			id, product_id, farmer_id, quantity, date, season_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`,
		rec.ID, rec.ProductID, rec.FarmerID, rec.Quantity, rec.Date,
		rec.SeasonID, rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar entrada de estoque: %w", err)
	}

	return nil
}

// FindByID implementa stock.ReceiptRepository.FindByID
func (r *ReceiptRepository) FindByID(ctx context.Context, id string) (*stock.Receipt, error) {
	var rec stock.Receipt

	err := r.db.QueryRow(ctx,
		`SELECT id, product_id, farmer_id, quantity, date, season_id, created_at
		FROM goods WHERE id = $1`,
		id).Scan(
		&rec.ID, &rec.ProductID, &rec.FarmerID, &rec.Quantity, &rec.Date,
		&rec.SeasonID, &rec.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReceiptNotFound
		}
		return nil, fmt.Errorf("erro ao buscar entrada de estoque: %w", err)
	}

	return &rec, nil
}

// selectReceipts monta a consulta de linhas de entrada sob o filtro,
// com ou sem paginação
func (r *ReceiptRepository) selectReceipts(ctx context.Context, filter listing.Filter, page int, paginate bool) ([]*stock.ReceiptRow, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, receiptSearchColumns, "g.date", "g.season_id")

	query := `SELECT
			g.id, g.product_id, g.farmer_id, g.quantity, g.date, g.season_id,
			g.created_at, p.name AS product_name, f.name AS supplier_name
		FROM goods g
		JOIN products p ON p.id = g.product_id
		JOIN farmers f ON f.id = g.farmer_id` +
		b.Clause() +
		` ORDER BY f.name ASC`
	if paginate {
		query += b.Paginate(page)
	}

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar entradas de estoque: %w", err)
	}
	defer rows.Close()

	receipts := make([]*stock.ReceiptRow, 0)
	for rows.Next() {
		var row stock.ReceiptRow
		err := rows.Scan(
			&row.ID, &row.ProductID, &row.FarmerID, &row.Quantity, &row.Date,
			&row.SeasonID, &row.CreatedAt, &row.ProductName, &row.SupplierName)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler entrada de estoque: %w", err)
		}
		receipts = append(receipts, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer entradas de estoque: %w", err)
	}

	return receipts, nil
}

// List implementa stock.ReceiptRepository.List
func (r *ReceiptRepository) List(ctx context.Context, filter listing.Filter, page int) ([]*stock.ReceiptRow, error) {
	return r.selectReceipts(ctx, filter, page, true)
}

// ListAll implementa stock.ReceiptRepository.ListAll
func (r *ReceiptRepository) ListAll(ctx context.Context, filter listing.Filter) ([]*stock.ReceiptRow, error) {
	return r.selectReceipts(ctx, filter, 0, false)
}

// Count implementa stock.ReceiptRepository.Count
func (r *ReceiptRepository) Count(ctx context.Context, filter listing.Filter) (int, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, receiptSearchColumns, "g.date", "g.season_id")

	query := `SELECT COUNT(*)
		FROM goods g
		JOIN products p ON p.id = g.product_id
		JOIN farmers f ON f.id = g.farmer_id` + b.Clause()

	var count int
	if err := r.db.QueryRow(ctx, query, b.Args()...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar entradas de estoque: %w", err)
	}

	return count, nil
}

// Update implementa stock.ReceiptRepository.Update
func (r *ReceiptRepository) Update(ctx context.Context, rec *stock.Receipt) error {
	result, err := r.db.Exec(ctx,
		`UPDATE goods SET
			product_id = $1, farmer_id = $2, quantity = $3, date = $4, season_id = $5
		WHERE id = $6`,
		rec.ProductID, rec.FarmerID, rec.Quantity, rec.Date, rec.SeasonID, rec.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar entrada de estoque: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrReceiptNotFound
	}

	return nil
}

// Delete implementa stock.ReceiptRepository.Delete
func (r *ReceiptRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM goods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover entrada de estoque: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrReceiptNotFound
	}

	return nil
}

// IssueRepository implementa a interface stock.IssueRepository
type IssueRepository struct {
	db *pgxpool.Pool
}

// NewIssueRepository cria uma nova instância de IssueRepository
func NewIssueRepository(db *pgxpool.Pool) stock.IssueRepository {
	return &IssueRepository{
		db: db,
	}
}

// Create implementa stock.IssueRepository.Create
func (r *IssueRepository) Create(ctx context.Context, iss *stock.Issue) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales (
			id, product_id, customer_id, quantity, date, season_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`,
		iss.ID, iss.ProductID, iss.CustomerID, iss.Quantity, iss.Date,
		iss.SeasonID, iss.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar saída de estoque: %w", err)
	}

	return nil
}

// FindByID implementa stock.IssueRepository.FindByID
func (r *IssueRepository) FindByID(ctx context.Context, id string) (*stock.Issue, error) {
	var iss stock.Issue

	err := r.db.QueryRow(ctx,
		`SELECT id, product_id, customer_id, quantity, date, season_id, created_at
		FROM sales WHERE id = $1`,
		id).Scan(
		&iss.ID, &iss.ProductID, &iss.CustomerID, &iss.Quantity, &iss.Date,
		&iss.SeasonID, &iss.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("erro ao buscar saída de estoque: %w", err)
	}

	return &iss, nil
}

// selectIssues monta a consulta de linhas de saída sob o filtro,
// com ou sem paginação
func (r *IssueRepository) selectIssues(ctx context.Context, filter listing.Filter, page int, paginate bool) ([]*stock.IssueRow, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, issueSearchColumns, "s.date", "s.season_id")

	query := `SELECT
			s.id, s.product_id, s.customer_id, s.quantity, s.date, s.season_id,
			s.created_at, p.name AS product_name, c.name AS customer_name
		FROM sales s
		JOIN products p ON p.id = s.product_id
		JOIN customers c ON c.id = s.customer_id` +
		b.Clause() +
		` ORDER BY c.name ASC`
	if paginate {
		query += b.Paginate(page)
	}

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar saídas de estoque: %w", err)
	}
	defer rows.Close()

	issues := make([]*stock.IssueRow, 0)
	for rows.Next() {
		var row stock.IssueRow
		err := rows.Scan(
			&row.ID, &row.ProductID, &row.CustomerID, &row.Quantity, &row.Date,
			&row.SeasonID, &row.CreatedAt, &row.ProductName, &row.CustomerName)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler saída de estoque: %w", err)
		}
		issues = append(issues, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer saídas de estoque: %w", err)
	}

	return issues, nil
}

// List implementa stock.IssueRepository.List
func (r *IssueRepository) List(ctx context.Context, filter listing.Filter, page int) ([]*stock.IssueRow, error) {
	return r.selectIssues(ctx, filter, page, true)
}

// ListAll implementa stock.IssueRepository.ListAll
func (r *IssueRepository) ListAll(ctx context.Context, filter listing.Filter) ([]*stock.IssueRow, error) {
	return r.selectIssues(ctx, filter, 0, false)
}

// Count implementa stock.IssueRepository.Count
func (r *IssueRepository) Count(ctx context.Context, filter listing.Filter) (int, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, issueSearchColumns, "s.date", "s.season_id")

	query := `SELECT COUNT(*)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		JOIN customers c ON c.id = s.customer_id` + b.Clause()

	var count int
	if err := r.db.QueryRow(ctx, query, b.Args()...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar saídas de estoque: %w", err)
	}

	return count, nil
}

// Update implementa stock.IssueRepository.Update
func (r *IssueRepository) Update(ctx context.Context, iss *stock.Issue) error {
	result, err := r.db.Exec(ctx,
		`UPDATE sales SET
			product_id = $1, customer_id = $2, quantity = $3, date = $4, season_id = $5
		WHERE id = $6`,
		iss.ProductID, iss.CustomerID, iss.Quantity, iss.Date, iss.SeasonID, iss.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar saída de estoque: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrIssueNotFound
	}

	return nil
}

// Delete implementa stock.IssueRepository.Delete
func (r *IssueRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover saída de estoque: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrIssueNotFound
	}

	return nil
}
