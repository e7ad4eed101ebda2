package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/dto"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/repository"
	farmerdomain "github.com/hugohenrick/agro-dashboard/internal/domain/farmer"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/hugohenrick/agro-dashboard/pkg/logger"
)

// FarmerController gerencia as requisições relacionadas a produtores
type FarmerController struct {
	farmerRepo farmerdomain.Repository
	logger     logger.Logger
}

// NewFarmerController cria uma nova instância de FarmerController
func NewFarmerController(farmerRepo farmerdomain.Repository, logger logger.Logger) *FarmerController {
	return &FarmerController{
		farmerRepo: farmerRepo,
		logger:     logger,
	}
}

// Create cria um novo produtor
// @Summary Criar produtor
// @Description Cria um novo produtor no sistema
// @Tags farmers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param farmer body dto.FarmerRequest true "Dados do produtor"
// @Success 201 {object} dto.FarmerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /farmers [post]
func (c *FarmerController) Create(ctx *gin.Context) {
	var req dto.FarmerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	farmer, err := farmerdomain.NewFarmer(
		req.Name, req.IDNumber, req.PhoneNumber, req.Email, req.City,
		req.District, req.Sector, req.Cell, req.Village, req.TeamLeaderID,
		req.Area, req.SeasonID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produtor", err.Error()))
		return
	}

	if err := c.farmerRepo.Create(ctx, farmer); err != nil {
		c.logger.Error("erro ao criar produtor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar produtor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFarmerResponse(farmer))
}

// List lista os produtores
// @Summary Listar produtores
// @Description Lista os produtores paginados, com filtros de busca, período e safra
// @Tags farmers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param from query string false "Data inicial (YYYY-MM-DD)"
// @Param to query string false "Data final (YYYY-MM-DD)"
// @Param season_id query string false "ID da safra"
// @Param page query int false "Página"
// @Success 200 {object} dto.FarmerListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /farmers [get]
func (c *FarmerController) List(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	filter := q.ToFilter()
	page := q.PageNumber()

	rows, err := c.farmerRepo.List(ctx, filter, page)
	if err != nil {
		c.logger.Error("erro ao listar produtores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtores", err.Error()))
		return
	}

	total, err := c.farmerRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao contar produtores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar produtores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FarmerListResponse{
		Items:      dto.ToFarmerListItems(rows),
		Total:      total,
		Page:       page,
		Size:       listing.PageSize,
		TotalPages: listing.TotalPages(total),
	})
}

// Options lista os produtores para seleção em formulários
// @Summary Opções de produtores
// @Description Lista pares (id, nome) de produtores ordenados por nome
// @Tags farmers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.OptionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /farmers/options [get]
func (c *FarmerController) Options(ctx *gin.Context) {
	options, err := c.farmerRepo.ListOptions(ctx)
	if err != nil {
		c.logger.Error("erro ao listar opções de produtores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar opções", err.Error()))
		return
	}

	responses := make([]dto.OptionResponse, 0, len(options))
	for _, o := range options {
		responses = append(responses, dto.OptionResponse{ID: o.ID, Name: o.Name})
	}

	ctx.JSON(http.StatusOK, responses)
}

// GetByID busca um produtor pelo ID
// @Summary Buscar produtor
// @Description Busca um produtor pelo ID
// @Tags farmers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produtor"
// @Success 200 {object} dto.FarmerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /farmers/{id} [get]
func (c *FarmerController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	farmer, err := c.farmerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produtor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produtor", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produtor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFarmerResponse(farmer))
}

// Update atualiza um produtor
// @Summary Atualizar produtor
// @Description Atualiza os dados de um produtor existente
// @Tags farmers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produtor"
// @Param farmer body dto.FarmerRequest true "Dados do produtor"
// @Success 200 {object} dto.FarmerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /farmers/{id} [put]
func (c *FarmerController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.FarmerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	farmer, err := c.farmerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produtor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produtor", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produtor", err.Error()))
		return
	}

	farmer.Name = req.Name
	farmer.IDNumber = req.IDNumber
	farmer.PhoneNumber = req.PhoneNumber
	farmer.Email = req.Email
	farmer.City = req.City
	farmer.District = req.District
	farmer.Sector = req.Sector
	farmer.Cell = req.Cell
	farmer.Village = req.Village
	farmer.TeamLeaderID = req.TeamLeaderID
	farmer.Area = req.Area
	farmer.SeasonID = req.SeasonID
	farmer.UpdatedAt = time.Now()

	if err := c.farmerRepo.Update(ctx, farmer); err != nil {
		c.logger.Error("erro ao atualizar produtor", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produtor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFarmerResponse(farmer))
}

// Delete remove um produtor
// @Summary Remover produtor
// @Description Remove um produtor do sistema
// @Tags farmers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produtor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /farmers/{id} [delete]
func (c *FarmerController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.farmerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produtor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover produtor", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover produtor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produtor removido com sucesso", nil))
}
