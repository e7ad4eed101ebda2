package dto

import (
	"time"

	"github.com/hugohenrick/agro-dashboard/internal/domain/report"
	"github.com/hugohenrick/agro-dashboard/pkg/money"
)

// ProductStockResponse representa o saldo de estoque de um produto
type ProductStockResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Received    float64 `json:"received"`
	Issued      float64 `json:"issued"`
	Net         float64 `json:"net"`
}

// CardSummaryResponse representa os números dos cartões do painel. Os
// valores monetários já vêm convertidos de centavos para exibição.
type CardSummaryResponse struct {
	InvoiceCount  int                    `json:"invoice_count"`
	CustomerCount int                    `json:"customer_count"`
	FarmerCount   int                    `json:"farmer_count"`
	TotalPaid     float64                `json:"total_paid"`
	TotalPending  float64                `json:"total_pending"`
	TotalArea     float64                `json:"total_area"`
	TotalReceived float64                `json:"total_received"`
	TotalIssued   float64                `json:"total_issued"`
	ProductStocks []ProductStockResponse `json:"product_stocks"`
}

// SeasonalOverviewResponse representa as estatísticas de uma safra. Os
// percentuais de crescimento são nulos quando não há safra anterior.
type SeasonalOverviewResponse struct {
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

// MonthlyPointResponse representa um ponto da série mensal
type MonthlyPointResponse struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// ToCardSummaryResponse converte o resumo dos cartões para o formato de resposta
func ToCardSummaryResponse(s *report.CardSummary) CardSummaryResponse {
	stocks := make([]ProductStockResponse, 0, len(s.ProductStocks))
	for _, ps := range s.ProductStocks {
		stocks = append(stocks, ProductStockResponse{
			ProductID:   ps.ProductID,
			ProductName: ps.ProductName,
			Received:    ps.Received,
			Issued:      ps.Issued,
			Net:         ps.Net,
		})
	}

	return CardSummaryResponse{
		InvoiceCount:  s.InvoiceCount,
		CustomerCount: s.CustomerCount,
		FarmerCount:   s.FarmerCount,
		TotalPaid:     money.FromCents(s.PaidCents),
		TotalPending:  money.FromCents(s.PendingCents),
		TotalArea:     s.TotalArea,
		TotalReceived: s.TotalReceived,
		TotalIssued:   s.TotalIssued,
		ProductStocks: stocks,
	}
}

// ToSeasonalOverviewResponse converte as estatísticas da safra para o
// formato de resposta
func ToSeasonalOverviewResponse(o *report.SeasonalOverview) SeasonalOverviewResponse {
	return SeasonalOverviewResponse{
		SeasonID:      o.SeasonID,
		SeasonName:    o.SeasonName,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		DaysRemaining: o.DaysRemaining,
		TotalFarmers:  o.TotalFarmers,
		TotalStock:    o.TotalStock,
		TotalSales:    o.TotalSales,
		FarmersGrowth: o.FarmersGrowth,
		StockGrowth:   o.StockGrowth,
		SalesGrowth:   o.SalesGrowth,
	}
}

// ToMonthlyPointResponses converte uma série mensal para o formato de resposta
func ToMonthlyPointResponses(points []report.MonthlyPoint) []MonthlyPointResponse {
	items := make([]MonthlyPointResponse, 0, len(points))
	for _, p := range points {
		items = append(items, MonthlyPointResponse{
			Month: p.Month,
			Total: p.Total,
		})
	}
	return items
}
