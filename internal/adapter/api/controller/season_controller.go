package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/dto"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/repository"
	seasondomain "github.com/hugohenrick/agro-dashboard/internal/domain/season"
	"github.com/hugohenrick/agro-dashboard/pkg/logger"
)

// SeasonController gerencia as requisições relacionadas a safras
type SeasonController struct {
	seasonRepo seasondomain.Repository
	logger     logger.Logger
}

// NewSeasonController cria uma nova instância de SeasonController
func NewSeasonController(seasonRepo seasondomain.Repository, logger logger.Logger) *SeasonController {
	return &SeasonController{
		seasonRepo: seasonRepo,
		logger:     logger,
	}
}

// Create cria uma nova safra
// @Summary Criar safra
// @Description Cria uma nova safra no sistema
// @Tags seasons
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param season body dto.SeasonRequest true "Dados da safra"
// @Success 201 {object} dto.SeasonResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /seasons [post]
func (c *SeasonController) Create(ctx *gin.Context) {
	var req dto.SeasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	season, err := seasondomain.NewSeason(req.Name, req.StartDate, req.EndDate, seasondomain.Status(req.Status))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar safra", err.Error()))
		return
	}

	if err := c.seasonRepo.Create(ctx, season); err != nil {
		c.logger.Error("erro ao criar safra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar safra", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSeasonResponse(season))
}

// List lista as safras
// @Summary Listar safras
// @Description Lista todas as safras ordenadas da mais recente para a mais antiga
// @Tags seasons
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SeasonListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /seasons [get]
func (c *SeasonController) List(ctx *gin.Context) {
	seasons, err := c.seasonRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar safras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar safras", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SeasonListResponse{
		Items: dto.ToSeasonResponses(seasons),
		Total: len(seasons),
	})
}

// GetByID busca uma safra pelo ID
// @Summary Buscar safra
// @Description Busca uma safra pelo ID
// @Tags seasons
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da safra"
// @Success 200 {object} dto.SeasonResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /seasons/{id} [get]
func (c *SeasonController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	season, err := c.seasonRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSeasonNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "safra não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar safra", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar safra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSeasonResponse(season))
}

// Update atualiza uma safra
// @Summary Atualizar safra
// @Description Atualiza os dados de uma safra existente
// @Tags seasons
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da safra"
// @Param season body dto.SeasonRequest true "Dados da safra"
// @Success 200 {object} dto.SeasonResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /seasons/{id} [put]
func (c *SeasonController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.SeasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	season, err := c.seasonRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSeasonNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "safra não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar safra", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar safra", err.Error()))
		return
	}

	season.Name = req.Name
	season.StartDate = req.StartDate
	season.EndDate = req.EndDate
	if seasondomain.Status(req.Status) == seasondomain.StatusActive {
		season.Status = seasondomain.StatusActive
	} else {
		season.Status = seasondomain.StatusInactive
	}

	if err := c.seasonRepo.Update(ctx, season); err != nil {
		c.logger.Error("erro ao atualizar safra", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar safra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSeasonResponse(season))
}

// Delete remove uma safra
// @Summary Remover safra
// @Description Remove uma safra; os registros vinculados a ela são mantidos
// @Tags seasons
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da safra"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /seasons/{id} [delete]
func (c *SeasonController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.seasonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSeasonNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "safra não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover safra", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover safra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("safra removida com sucesso", nil))
}
