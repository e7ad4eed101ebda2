package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/dto"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/repository"
	reportdomain "github.com/hugohenrick/agro-dashboard/internal/domain/report"
	"github.com/hugohenrick/agro-dashboard/pkg/logger"
)

// DashboardController gerencia as requisições de agregações do painel
type DashboardController struct {
	reportRepo reportdomain.Repository
	logger     logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(reportRepo reportdomain.Repository, logger logger.Logger) *DashboardController {
	return &DashboardController{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Cards retorna os números dos cartões do painel
// @Summary Cartões do painel
// @Description Agrega faturas, clientes, produtores, área e saldos de estoque por produto
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Success 200 {object} dto.CardSummaryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/cards [get]
func (c *DashboardController) Cards(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	summary, err := c.reportRepo.CardSummary(ctx, q.ToFilter())
	if err != nil {
		c.logger.Error("erro ao calcular cartões do painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular cartões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardSummaryResponse(summary))
}

// SeasonOverview retorna as estatísticas de uma safra
// @Summary Panorama da safra
// @Description Agrega produtores, estoque e vendas da safra, com a variação em relação à safra anterior
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da safra"
// @Success 200 {object} dto.SeasonalOverviewResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/seasons/{id}/overview [get]
func (c *DashboardController) SeasonOverview(ctx *gin.Context) {
	id := ctx.Param("id")

	overview, err := c.reportRepo.SeasonalOverview(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSeasonNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "safra não encontrada", ""))
			return
		}
		c.logger.Error("erro ao calcular panorama da safra", "error", err, "season_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular panorama", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSeasonalOverviewResponse(overview))
}

// StockIn retorna a série mensal de quantidades recebidas
// @Summary Série mensal de entradas
// @Description Soma as quantidades recebidas por mês do calendário
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Success 200 {array} dto.MonthlyPointResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/stock-in [get]
func (c *DashboardController) StockIn(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	points, err := c.reportRepo.StockInSeries(ctx, q.ToFilter())
	if err != nil {
		c.logger.Error("erro ao calcular série de entradas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular série de entradas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyPointResponses(points))
}

// Revenue retorna a série mensal de receita
// @Summary Série mensal de receita
// @Description Soma a receita (quantidade vendida × preço unitário de venda) por mês do calendário
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Success 200 {array} dto.MonthlyPointResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/revenue [get]
func (c *DashboardController) Revenue(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	points, err := c.reportRepo.RevenueSeries(ctx, q.ToFilter())
	if err != nil {
		c.logger.Error("erro ao calcular série de receita", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular série de receita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyPointResponses(points))
}
