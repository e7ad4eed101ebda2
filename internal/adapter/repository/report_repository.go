package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/report"
	"github.com/hugohenrick/agro-dashboard/internal/domain/season"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// ReportRepository implementa a interface report.Repository
type ReportRepository struct {
	db      *pgxpool.Pool
	seasons season.Repository
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db *pgxpool.Pool, seasons season.Repository) report.Repository {
	return &ReportRepository{
		db:      db,
		seasons: seasons,
	}
}

// CardSummary implementa report.Repository.CardSummary. As subconsultas são
// independentes entre si e executam concorrentemente sobre o pool.
func (r *ReportRepository) CardSummary(ctx context.Context, filter listing.Filter) (*report.CardSummary, error) {
	summary := &report.CardSummary{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b := newWhereBuilder()
		b.ApplyFilter(filter, invoiceSearchColumns, "i.date", "f.season_id")

		query := `SELECT
				COUNT(*),
				COALESCE(SUM(i.amount_cents) FILTER (WHERE i.status = 'paid'), 0),
				COALESCE(SUM(i.amount_cents) FILTER (WHERE i.status = 'pending'), 0)
			FROM invoices i
			JOIN farmers f ON f.id = i.farmer_id` + b.Clause()

		err := r.db.QueryRow(gctx, query, b.Args()...).
			Scan(&summary.InvoiceCount, &summary.PaidCents, &summary.PendingCents)
		if err != nil {
			return fmt.Errorf("erro ao agregar faturas: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		b := newWhereBuilder()
		b.ApplyFilter(filter, []string{"c.name", "c.email"}, "c.created_at", "")

		err := r.db.QueryRow(gctx, `SELECT COUNT(*) FROM customers c`+b.Clause(), b.Args()...).
			Scan(&summary.CustomerCount)
		if err != nil {
			return fmt.Errorf("erro ao contar clientes: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		b := newWhereBuilder()
		b.ApplyFilter(filter, farmerSearchColumns, "f.created_at", "f.season_id")

		query := `SELECT COUNT(*), COALESCE(SUM(f.area), 0) FROM farmers f` + b.Clause()

		err := r.db.QueryRow(gctx, query, b.Args()...).
			Scan(&summary.FarmerCount, &summary.TotalArea)
		if err != nil {
			return fmt.Errorf("erro ao agregar produtores: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		b := newWhereBuilder()
		b.ApplyFilter(filter, receiptSearchColumns, "g.date", "g.season_id")

		query := `SELECT COALESCE(SUM(g.quantity), 0)
			FROM goods g
			JOIN products p ON p.id = g.product_id
			JOIN farmers f ON f.id = g.farmer_id` + b.Clause()

		err := r.db.QueryRow(gctx, query, b.Args()...).Scan(&summary.TotalReceived)
		if err != nil {
			return fmt.Errorf("erro ao somar entradas: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		b := newWhereBuilder()
		b.ApplyFilter(filter, issueSearchColumns, "s.date", "s.season_id")

		query := `SELECT COALESCE(SUM(s.quantity), 0)
			FROM sales s
			JOIN products p ON p.id = s.product_id
			JOIN customers c ON c.id = s.customer_id` + b.Clause()

		err := r.db.QueryRow(gctx, query, b.Args()...).Scan(&summary.TotalIssued)
		if err != nil {
			return fmt.Errorf("erro ao somar saídas: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		stocks, err := r.productStocks(gctx, filter)
		if err != nil {
			return err
		}
		summary.ProductStocks = stocks
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summary, nil
}

// productStocks calcula o saldo de cada produto do catálogo: os totais por
// produto são agregados em consultas separadas e combinados na ordem do
// catálogo, de modo que produtos sem movimento também aparecem, zerados.
func (r *ReportRepository) productStocks(ctx context.Context, filter listing.Filter) ([]report.ProductStock, error) {
	var (
		stocks   []report.ProductStock
		received map[string]float64
		issued   map[string]float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := r.db.Query(gctx, `SELECT id, name FROM products ORDER BY name ASC`)
		if err != nil {
			return fmt.Errorf("erro ao listar catálogo de produtos: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var s report.ProductStock
			if err := rows.Scan(&s.ProductID, &s.ProductName); err != nil {
				return fmt.Errorf("erro ao ler produto do catálogo: %w", err)
			}
			stocks = append(stocks, s)
		}
		return rows.Err()
	})

	g.Go(func() error {
		var err error
		received, err = r.quantityByProduct(gctx, "goods", filter)
		return err
	})

	g.Go(func() error {
		var err error
		issued, err = r.quantityByProduct(gctx, "sales", filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for idx := range stocks {
		s := &stocks[idx]
		s.Received = received[s.ProductID]
		s.Issued = issued[s.ProductID]
		s.Net = report.NetStock(s.Received, s.Issued)
	}

	if stocks == nil {
		stocks = make([]report.ProductStock, 0)
	}

	return stocks, nil
}

// quantityByProduct soma as quantidades da tabela de movimento informada
// agrupadas por produto, sob as mesmas colunas de busca das listagens
func (r *ReportRepository) quantityByProduct(ctx context.Context, table string, filter listing.Filter) (map[string]float64, error) {
	b := newWhereBuilder()

	var from string
	switch table {
	case "goods":
		from = ` FROM goods m
			JOIN products p ON p.id = m.product_id
			JOIN farmers f ON f.id = m.farmer_id`
		b.ApplyFilter(filter, receiptSearchColumns, "m.date", "m.season_id")
	case "sales":
		from = ` FROM sales m
			JOIN products p ON p.id = m.product_id
			JOIN customers c ON c.id = m.customer_id`
		b.ApplyFilter(filter, issueSearchColumns, "m.date", "m.season_id")
	default:
		return nil, fmt.Errorf("tabela de movimento desconhecida: %s", table)
	}

	query := `SELECT m.product_id, SUM(m.quantity)` + from +
		b.Clause() + ` GROUP BY m.product_id`

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar quantidades de %s: %w", table, err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var productID string
		var total float64
		if err := rows.Scan(&productID, &total); err != nil {
			return nil, fmt.Errorf("erro ao ler soma de %s: %w", table, err)
		}
		totals[productID] = total
	}

	return totals, rows.Err()
}

// SeasonalOverview implementa report.Repository.SeasonalOverview
func (r *ReportRepository) SeasonalOverview(ctx context.Context, seasonID string) (*report.SeasonalOverview, error) {
	current, err := r.seasons.FindByID(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	overview := &report.SeasonalOverview{
		SeasonID:   current.ID,
		SeasonName: current.Name,
		StartDate:  current.StartDate,
		EndDate:    current.EndDate,
	}
	overview.DaysRemaining = current.DaysRemaining(time.Now())

	farmers, stockIn, sales, err := r.seasonTotals(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	overview.TotalFarmers = farmers
	overview.TotalStock = stockIn
	overview.TotalSales = sales

	previous, err := r.seasons.FindPrevious(ctx, current)
	if err != nil {
		return nil, err
	}
	if previous == nil {
		// Sem safra anterior não há comparação possível
		return overview, nil
	}

	prevFarmers, prevStock, prevSales, err := r.seasonTotals(ctx, previous.ID)
	if err != nil {
		return nil, err
	}

	farmersGrowth := report.GrowthPercent(float64(farmers), float64(prevFarmers))
	stockGrowth := report.GrowthPercent(stockIn, prevStock)
	salesGrowth := report.GrowthPercent(sales, prevSales)

	overview.FarmersGrowth = &farmersGrowth
	overview.StockGrowth = &stockGrowth
	overview.SalesGrowth = &salesGrowth

	return overview, nil
}

// seasonTotals agrega os números de uma safra em consultas concorrentes
func (r *ReportRepository) seasonTotals(ctx context.Context, seasonID string) (farmers int, stockIn, sales float64, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := r.db.QueryRow(gctx,
			`SELECT COUNT(*) FROM farmers WHERE season_id = $1`, seasonID).Scan(&farmers)
		if err != nil {
			return fmt.Errorf("erro ao contar produtores da safra: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := r.db.QueryRow(gctx,
			`SELECT COALESCE(SUM(quantity), 0) FROM goods WHERE season_id = $1`, seasonID).Scan(&stockIn)
		if err != nil {
			return fmt.Errorf("erro ao somar entradas da safra: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := r.db.QueryRow(gctx,
			`SELECT COALESCE(SUM(quantity), 0) FROM sales WHERE season_id = $1`, seasonID).Scan(&sales)
		if err != nil {
			return fmt.Errorf("erro ao somar saídas da safra: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, 0, 0, err
	}

	return farmers, stockIn, sales, nil
}

// StockInSeries implementa report.Repository.StockInSeries
func (r *ReportRepository) StockInSeries(ctx context.Context, filter listing.Filter) ([]report.MonthlyPoint, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, receiptSearchColumns, "g.date", "g.season_id")

	query := `SELECT EXTRACT(MONTH FROM g.date)::int AS month, SUM(g.quantity)
		FROM goods g
		JOIN products p ON p.id = g.product_id
		JOIN farmers f ON f.id = g.farmer_id` +
		b.Clause() +
		` GROUP BY month ORDER BY month ASC`

	return r.monthlySeries(ctx, query, b.Args())
}

// RevenueSeries implementa report.Repository.RevenueSeries
func (r *ReportRepository) RevenueSeries(ctx context.Context, filter listing.Filter) ([]report.MonthlyPoint, error) {
	b := newWhereBuilder()
	b.ApplyFilter(filter, issueSearchColumns, "s.date", "s.season_id")

	query := `SELECT EXTRACT(MONTH FROM s.date)::int AS month, SUM(s.quantity * p.sale_unit_price)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		JOIN customers c ON c.id = s.customer_id` +
		b.Clause() +
		` GROUP BY month ORDER BY month ASC`

	return r.monthlySeries(ctx, query, b.Args())
}

func (r *ReportRepository) monthlySeries(ctx context.Context, query string, args []interface{}) ([]report.MonthlyPoint, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular série mensal: %w", err)
	}
	defer rows.Close()

	points := make([]report.MonthlyPoint, 0)
	for rows.Next() {
		var p report.MonthlyPoint
		if err := rows.Scan(&p.Month, &p.Total); err != nil {
			return nil, fmt.Errorf("erro ao ler ponto da série mensal: %w", err)
		}
		points = append(points, p)
	}

	return points, rows.Err()
}
