package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/dto"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/repository"
	invoicedomain "github.com/hugohenrick/agro-dashboard/internal/domain/invoice"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/hugohenrick/agro-dashboard/pkg/logger"
	"github.com/hugohenrick/agro-dashboard/pkg/money"
)

// Quantidade padrão de faturas recentes no painel
const defaultLatestInvoices = 5

// InvoiceController gerencia as requisições relacionadas a faturas
type InvoiceController struct {
	invoiceRepo invoicedomain.Repository
	logger      logger.Logger
}

// NewInvoiceController cria uma nova instância de InvoiceController
func NewInvoiceController(invoiceRepo invoicedomain.Repository, logger logger.Logger) *InvoiceController {
	return &InvoiceController{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// Create cria uma nova fatura
// @Summary Criar fatura
// @Description Cria uma nova fatura; o valor é informado em unidades monetárias com no máximo duas casas decimais
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param invoice body dto.InvoiceRequest true "Dados da fatura"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [post]
func (c *InvoiceController) Create(ctx *gin.Context) {
	var req dto.InvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	invoice, err := invoicedomain.NewInvoice(req.FarmerID, req.Amount, invoicedomain.Status(req.Status), req.Date)
	if err != nil {
		if errors.Is(err, money.ErrSubCentPrecision) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor com mais de duas casas decimais", err.Error()))
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar fatura", err.Error()))
		return
	}

	if err := c.invoiceRepo.Create(ctx, invoice); err != nil {
		c.logger.Error("erro ao criar fatura", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar fatura", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// List lista as faturas
// @Summary Listar faturas
// @Description Lista as faturas paginadas em ordem cronológica inversa, com filtros de busca, período e safra
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Param page query int false "Página"
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [get]
func (c *InvoiceController) List(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	filter := q.ToFilter()
	page := q.PageNumber()

	rows, err := c.invoiceRepo.List(ctx, filter, page)
	if err != nil {
		c.logger.Error("erro ao listar faturas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar faturas", err.Error()))
		return
	}

	total, err := c.invoiceRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao contar faturas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar faturas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.InvoiceListResponse{
		Items:      dto.ToInvoiceListItems(rows),
		Total:      total,
		Page:       page,
		Size:       listing.PageSize,
		TotalPages: listing.TotalPages(total),
	})
}

// Export lista todas as faturas sob o filtro, sem paginação
// @Summary Exportar faturas
// @Description Lista todas as faturas que atendem ao filtro, para exportação
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Success 200 {array} dto.InvoiceListItem
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/export [get]
func (c *InvoiceController) Export(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	rows, err := c.invoiceRepo.ListAll(ctx, q.ToFilter())
	if err != nil {
		c.logger.Error("erro ao exportar faturas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar faturas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListItems(rows))
}

// Latest lista as faturas mais recentes
// @Summary Faturas recentes
// @Description Lista as faturas mais recentes para o painel
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param limit query int false "Quantidade de faturas (padrão 5)"
// @Success 200 {array} dto.InvoiceListItem
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/latest [get]
func (c *InvoiceController) Latest(ctx *gin.Context) {
	limit := defaultLatestInvoices
	if v := ctx.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetro limit inválido", ""))
			return
		}
		limit = parsed
	}

	rows, err := c.invoiceRepo.Latest(ctx, limit)
	if err != nil {
		c.logger.Error("erro ao listar faturas recentes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar faturas recentes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListItems(rows))
}

// GetByID busca uma fatura pelo ID
// @Summary Buscar fatura
// @Description Busca uma fatura pelo ID
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da fatura"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [get]
func (c *InvoiceController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	invoice, err := c.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fatura não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar fatura", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fatura", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// Update atualiza uma fatura
// @Summary Atualizar fatura
// @Description Atualiza os dados de uma fatura existente
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da fatura"
// @Param invoice body dto.InvoiceRequest true "Dados da fatura"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [put]
func (c *InvoiceController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.InvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	invoice, err := c.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fatura não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar fatura", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fatura", err.Error()))
		return
	}

	if err := invoice.SetAmount(req.Amount); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor inválido", err.Error()))
		return
	}

	invoice.FarmerID = req.FarmerID
	invoice.Status = invoicedomain.Status(req.Status)
	invoice.Date = req.Date

	if err := c.invoiceRepo.Update(ctx, invoice); err != nil {
		c.logger.Error("erro ao atualizar fatura", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar fatura", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// Delete remove uma fatura
// @Summary Remover fatura
// @Description Remove uma fatura do sistema
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da fatura"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [delete]
func (c *InvoiceController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.invoiceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fatura não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover fatura", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover fatura", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("fatura removida com sucesso", nil))
}
