package report

import (
	"context"
	"math"
	"time"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// ProductStock é o saldo de estoque de um produto do catálogo: total
// recebido menos total vendido sob o mesmo filtro. Pode ser negativo.
type ProductStock struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Received    float64 `json:"received"`
	Issued      float64 `json:"issued"`
	Net         float64 `json:"net"`
}

// CardSummary agrega os números dos cartões do painel. Somatórios sem
// linhas correspondentes valem zero, nunca nulo.
type CardSummary struct {
	InvoiceCount  int            `json:"invoice_count"`
	CustomerCount int            `json:"customer_count"`
	FarmerCount   int            `json:"farmer_count"`
	PaidCents     int64          `json:"paid_cents"`
	PendingCents  int64          `json:"pending_cents"`
	TotalArea     float64        `json:"total_area"`
	TotalReceived float64        `json:"total_received"`
	TotalIssued   float64        `json:"total_issued"`
	ProductStocks []ProductStock `json:"product_stocks"`
}

// SeasonalOverview agrega as estatísticas de uma safra. Os percentuais de
// crescimento são nulos quando não existe safra anterior para comparar.
type SeasonalOverview struct {
	SeasonID      string    `json:"season_id"`
	SeasonName    string    `json:"season_name"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	DaysRemaining int       `json:"days_remaining"`
	TotalFarmers  int       `json:"total_farmers"`
	TotalStock    float64   `json:"total_stock"`
	TotalSales    float64   `json:"total_sales"`
	FarmersGrowth *float64  `json:"farmers_growth"`
	StockGrowth   *float64  `json:"stock_growth"`
	SalesGrowth   *float64  `json:"sales_growth"`
}

// MonthlyPoint é um ponto da série mensal: mês do calendário (1-12) e o
// total agregado. Meses sem movimento não aparecem na série.
type MonthlyPoint struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// Repository define a interface das consultas de agregação do painel
type Repository interface {
	// CardSummary calcula os números dos cartões sob o filtro informado.
	// As subconsultas independentes são emitidas concorrentemente.
	CardSummary(ctx context.Context, filter listing.Filter) (*CardSummary, error)

	// SeasonalOverview calcula as estatísticas da safra informada,
	// comparando com a safra imediatamente anterior pela data de início
	SeasonalOverview(ctx context.Context, seasonID string) (*SeasonalOverview, error)

	// StockInSeries retorna a série mensal de quantidades recebidas
	StockInSeries(ctx context.Context, filter listing.Filter) ([]MonthlyPoint, error)

	// RevenueSeries retorna a série mensal de receita
	// (quantidade vendida × preço unitário de venda)
	RevenueSeries(ctx context.Context, filter listing.Filter) ([]MonthlyPoint, error)
}

// NetStock calcula o saldo de estoque. Não há arredondamento nem piso:
// o resultado é negativo quando as saídas excedem as entradas.
func NetStock(received, issued float64) float64 {
	return received - issued
}

// GrowthPercent calcula a variação percentual entre o período atual e o
// anterior, arredondada para uma casa decimal. Base zero com valor atual
// também zero resulta em 0; base zero com valor atual positivo em 100.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return math.Round((current-previous)/previous*1000) / 10
}
