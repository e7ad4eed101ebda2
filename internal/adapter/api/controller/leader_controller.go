package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/dto"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/repository"
	leaderdomain "github.com/hugohenrick/agro-dashboard/internal/domain/leader"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/hugohenrick/agro-dashboard/pkg/logger"
)

// LeaderController gerencia as requisições relacionadas a líderes de equipe
type LeaderController struct {
	leaderRepo leaderdomain.Repository
	logger     logger.Logger
}

// NewLeaderController cria uma nova instância de LeaderController
func NewLeaderController(leaderRepo leaderdomain.Repository, logger logger.Logger) *LeaderController {
	return &LeaderController{
		leaderRepo: leaderRepo,
		logger:     logger,
	}
}

// Create cria um novo líder de equipe
// @Summary Criar líder de equipe
// @Description Cria um novo líder de equipe no sistema
// @Tags team-leaders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param leader body dto.LeaderRequest true "Dados do líder"
// @Success 201 {object} dto.LeaderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /team-leaders [post]
func (c *LeaderController) Create(ctx *gin.Context) {
	var req dto.LeaderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	leader, err := leaderdomain.NewLeader(
		req.Name, req.IDNumber, req.PhoneNumber, req.Email, req.City,
		req.District, req.Sector, req.Cell, req.Village, req.SupervisorID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar líder de equipe", err.Error()))
		return
	}

	if err := c.leaderRepo.Create(ctx, leader); err != nil {
		c.logger.Error("erro ao criar líder de equipe", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar líder de equipe", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLeaderResponse(leader))
}

// List lista os líderes de equipe
// @Summary Listar líderes de equipe
// @Description Lista os líderes paginados, com filtro de busca por nome
// @Tags team-leaders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param page query int false "Página"
// @Success 200 {object} dto.LeaderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /team-leaders [get]
func (c *LeaderController) List(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	filter := q.ToFilter()
	page := q.PageNumber()

	leaders, err := c.leaderRepo.List(ctx, filter, page)
	if err != nil {
		c.logger.Error("erro ao listar líderes de equipe", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar líderes", err.Error()))
		return
	}

	total, err := c.leaderRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao contar líderes de equipe", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar líderes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LeaderListResponse{
		Items:      dto.ToLeaderResponses(leaders),
		Total:      total,
		Page:       page,
		Size:       listing.PageSize,
		TotalPages: listing.TotalPages(total),
	})
}

// Options lista os líderes para seleção em formulários
// @Summary Opções de líderes de equipe
// @Description Lista pares (id, nome) de líderes ordenados por nome
// @Tags team-leaders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.OptionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /team-leaders/options [get]
func (c *LeaderController) Options(ctx *gin.Context) {
	options, err := c.leaderRepo.ListOptions(ctx)
	if err != nil {
		c.logger.Error("erro ao listar opções de líderes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar opções", err.Error()))
		return
	}

	responses := make([]dto.OptionResponse, 0, len(options))
	for _, o := range options {
		responses = append(responses, dto.OptionResponse{ID: o.ID, Name: o.Name})
	}

	ctx.JSON(http.StatusOK, responses)
}

// GetByID busca um líder de equipe pelo ID
// @Summary Buscar líder de equipe
// @Description Busca um líder de equipe pelo ID
// @Tags team-leaders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do líder"
// @Success 200 {object} dto.LeaderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /team-leaders/{id} [get]
func (c *LeaderController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	leader, err := c.leaderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeaderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "líder de equipe não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar líder de equipe", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar líder", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLeaderResponse(leader))
}

// Update atualiza um líder de equipe
// @Summary Atualizar líder de equipe
// @Description Atualiza os dados de um líder de equipe existente
// @Tags team-leaders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do líder"
// @Param leader body dto.LeaderRequest true "Dados do líder"
// @Success 200 {object} dto.LeaderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /team-leaders/{id} [put]
func (c *LeaderController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.LeaderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	leader, err := c.leaderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeaderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "líder de equipe não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar líder de equipe", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar líder", err.Error()))
		return
	}

	leader.Name = req.Name
	leader.IDNumber = req.IDNumber
	leader.PhoneNumber = req.PhoneNumber
	leader.Email = req.Email
	leader.City = req.City
	leader.District = req.District
	leader.Sector = req.Sector
	leader.Cell = req.Cell
	leader.Village = req.Village
	leader.SupervisorID = req.SupervisorID
	leader.UpdatedAt = time.Now()

	if err := c.leaderRepo.Update(ctx, leader); err != nil {
		c.logger.Error("erro ao atualizar líder de equipe", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar líder", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLeaderResponse(leader))
}

// Delete remove um líder de equipe
// @Summary Remover líder de equipe
// @Description Remove um líder de equipe do sistema
// @Tags team-leaders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do líder"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /team-leaders/{id} [delete]
func (c *LeaderController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.leaderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLeaderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "líder de equipe não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover líder de equipe", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover líder", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("líder de equipe removido com sucesso", nil))
}
