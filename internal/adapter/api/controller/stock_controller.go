package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/dto"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/repository"
	stockdomain "github.com/hugohenrick/agro-dashboard/internal/domain/stock"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/hugohenrick/agro-dashboard/pkg/logger"
)

// ReceiptController gerencia as requisições de entradas de estoque
type ReceiptController struct {
	receiptRepo stockdomain.ReceiptRepository
	logger      logger.Logger
}

// NewReceiptController cria uma nova instância de ReceiptController
func NewReceiptController(receiptRepo stockdomain.ReceiptRepository, logger logger.Logger) *ReceiptController {
	return &ReceiptController{
		receiptRepo: receiptRepo,
		logger:      logger,
	}
}

// Create registra uma nova entrada de estoque
// @Summary Criar entrada de estoque
// @Description Registra a compra de um produto de um produtor
// @Tags goods
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param receipt body dto.ReceiptRequest true "Dados da entrada"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goods [post]
func (c *ReceiptController) Create(ctx *gin.Context) {
	var req dto.ReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	receipt, err := stockdomain.NewReceipt(req.ProductID, req.FarmerID, req.Quantity, req.Date, req.SeasonID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar entrada de estoque", err.Error()))
		return
	}

	if err := c.receiptRepo.Create(ctx, receipt); err != nil {
		c.logger.Error("erro ao criar entrada de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar entrada de estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// List lista as entradas de estoque
// @Summary Listar entradas de estoque
// @Description Lista as entradas paginadas, com filtros de busca, período e safra
// @Tags goods
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Param page query int false "Página"
// @Success 200 {object} dto.ReceiptListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goods [get]
func (c *ReceiptController) List(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	filter := q.ToFilter()
	page := q.PageNumber()

	rows, err := c.receiptRepo.List(ctx, filter, page)
	if err != nil {
		c.logger.Error("erro ao listar entradas de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar entradas", err.Error()))
		return
	}

	total, err := c.receiptRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao contar entradas de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar entradas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ReceiptListResponse{
		Items:      dto.ToReceiptListItems(rows),
		Total:      total,
		Page:       page,
		Size:       listing.PageSize,
		TotalPages: listing.TotalPages(total),
	})
}

// Export lista todas as entradas sob o filtro, sem paginação
// @Summary Exportar entradas de estoque
// @Description Lista todas as entradas que atendem ao filtro, para exportação
// @Tags goods
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Success 200 {array} dto.ReceiptListItem
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goods/export [get]
func (c *ReceiptController) Export(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	rows, err := c.receiptRepo.ListAll(ctx, q.ToFilter())
	if err != nil {
		c.logger.Error("erro ao exportar entradas de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar entradas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptListItems(rows))
}

// GetByID busca uma entrada de estoque pelo ID
// @Summary Buscar entrada de estoque
// @Description Busca uma entrada de estoque pelo ID
// @Tags goods
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da entrada"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goods/{id} [get]
func (c *ReceiptController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	receipt, err := c.receiptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "entrada de estoque não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar entrada de estoque", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar entrada", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// Update atualiza uma entrada de estoque
// @Summary Atualizar entrada de estoque
// @Description Atualiza os dados de uma entrada de estoque existente
// @Tags goods
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da entrada"
// @Param receipt body dto.ReceiptRequest true "Dados da entrada"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goods/{id} [put]
func (c *ReceiptController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	receipt, err := c.receiptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "entrada de estoque não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar entrada de estoque", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar entrada", err.Error()))
		return
	}

	receipt.ProductID = req.ProductID
	receipt.FarmerID = req.FarmerID
	receipt.Quantity = req.Quantity
	receipt.Date = req.Date
	receipt.SeasonID = req.SeasonID

	if err := c.receiptRepo.Update(ctx, receipt); err != nil {
		c.logger.Error("erro ao atualizar entrada de estoque", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar entrada", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// Delete remove uma entrada de estoque
// @Summary Remover entrada de estoque
// @Description Remove uma entrada de estoque do sistema
// @Tags goods
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da entrada"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /goods/{id} [delete]
func (c *ReceiptController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.receiptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "entrada de estoque não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover entrada de estoque", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover entrada", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("entrada de estoque removida com sucesso", nil))
}

// IssueController gerencia as requisições de saídas de estoque
type IssueController struct {
	issueRepo stockdomain.IssueRepository
	logger    logger.Logger
}

// NewIssueController cria uma nova instância de IssueController
func NewIssueController(issueRepo stockdomain.IssueRepository, logger logger.Logger) *IssueController {
	return &IssueController{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

// Create registra uma nova saída de estoque
// @Summary Criar saída de estoque
// @Description Registra a venda de um produto a um cliente
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param issue body dto.IssueRequest true "Dados da saída"
// @Success 201 {object} dto.IssueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *IssueController) Create(ctx *gin.Context) {
	var req dto.IssueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	issue, err := stockdomain.NewIssue(req.ProductID, req.CustomerID, req.Quantity, req.Date, req.SeasonID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar saída de estoque", err.Error()))
		return
	}

	if err := c.issueRepo.Create(ctx, issue); err != nil {
		c.logger.Error("erro ao criar saída de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar saída de estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIssueResponse(issue))
}

// List lista as saídas de estoque
// @Summary Listar saídas de estoque
// @Description Lista as saídas paginadas, com filtros de busca, período e safra
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Param page query int false "Página"
// @Success 200 {object} dto.IssueListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *IssueController) List(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	filter := q.ToFilter()
	page := q.PageNumber()

	rows, err := c.issueRepo.List(ctx, filter, page)
	if err != nil {
		c.logger.Error("erro ao listar saídas de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar saídas", err.Error()))
		return
	}

	total, err := c.issueRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao contar saídas de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar saídas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.IssueListResponse{
		Items:      dto.ToIssueListItems(rows),
		Total:      total,
		Page:       page,
		Size:       listing.PageSize,
		TotalPages: listing.TotalPages(total),
	})
}

// Export lista todas as saídas sob o filtro, sem paginação
// @Summary Exportar saídas de estoque
// @Description Lista todas as saídas que atendem ao filtro, para exportação
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Success 200 {array} dto.IssueListItem
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/export [get]
func (c *IssueController) Export(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	rows, err := c.issueRepo.ListAll(ctx, q.ToFilter())
	if err != nil {
		c.logger.Error("erro ao exportar saídas de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar saídas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIssueListItems(rows))
}

// GetByID busca uma saída de estoque pelo ID
// @Summary Buscar saída de estoque
// @Description Busca uma saída de estoque pelo ID
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da saída"
// @Success 200 {object} dto.IssueResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *IssueController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	issue, err := c.issueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "saída de estoque não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar saída de estoque", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar saída", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIssueResponse(issue))
}

// Update atualiza uma saída de estoque
// @Summary Atualizar saída de estoque
// @Description Atualiza os dados de uma saída de estoque existente
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da saída"
// @Param issue body dto.IssueRequest true "Dados da saída"
// @Success 200 {object} dto.IssueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [put]
func (c *IssueController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.IssueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	issue, err := c.issueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "saída de estoque não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar saída de estoque", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar saída", err.Error()))
		return
	}

	issue.ProductID = req.ProductID
	issue.CustomerID = req.CustomerID
	issue.Quantity = req.Quantity
	issue.Date = req.Date
	issue.SeasonID = req.SeasonID

	if err := c.issueRepo.Update(ctx, issue); err != nil {
		c.logger.Error("erro ao atualizar saída de estoque", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar saída", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIssueResponse(issue))
}

// Delete remove uma saída de estoque
// @Summary Remover saída de estoque
// @Description Remove uma saída de estoque do sistema
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da saída"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *IssueController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.issueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "saída de estoque não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover saída de estoque", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover saída", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("saída de estoque removida com sucesso", nil))
}
