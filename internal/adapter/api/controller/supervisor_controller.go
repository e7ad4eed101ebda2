package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/dto"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/repository"
	supervisordomain "github.com/hugohenrick/agro-dashboard/internal/domain/supervisor"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/hugohenrick/agro-dashboard/pkg/logger"
)

// SupervisorController gerencia as requisições relacionadas a supervisores
type SupervisorController struct {
	supervisorRepo supervisordomain.Repository
	logger         logger.Logger
}

// NewSupervisorController cria uma nova instância de SupervisorController
func NewSupervisorController(supervisorRepo supervisordomain.Repository, logger logger.Logger) *SupervisorController {
	return &SupervisorController{
		supervisorRepo: supervisorRepo,
		logger:         logger,
	}
}

// Create cria um novo supervisor
// @Summary Criar supervisor
// @Description Cria um novo supervisor no sistema
// @Tags supervisors
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supervisor body dto.SupervisorRequest true "Dados do supervisor"
// @Success 201 {object} dto.SupervisorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /supervisors [post]
func (c *SupervisorController) Create(ctx *gin.Context) {
	var req dto.SupervisorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	supervisor, err := supervisordomain.NewSupervisor(
		req.Name, req.IDNumber, req.PhoneNumber, req.Email, req.City,
		req.District, req.Sector, req.Cell, req.Village)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar supervisor", err.Error()))
		return
	}

	if err := c.supervisorRepo.Create(ctx, supervisor); err != nil {
		c.logger.Error("erro ao criar supervisor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar supervisor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupervisorResponse(supervisor))
}

// List lista os supervisores
// @Summary Listar supervisores
// @Description Lista os supervisores paginados, com filtro de busca por nome
// @Tags supervisors
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param page query int false "Página"
// @Success 200 {object} dto.SupervisorListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /supervisors [get]
func (c *SupervisorController) List(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	filter := q.ToFilter()
	page := q.PageNumber()

	supervisors, err := c.supervisorRepo.List(ctx, filter, page)
	if err != nil {
		c.logger.Error("erro ao listar supervisores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar supervisores", err.Error()))
		return
	}

	total, err := c.supervisorRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao contar supervisores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar supervisores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SupervisorListResponse{
		Items:      dto.ToSupervisorResponses(supervisors),
		Total:      total,
		Page:       page,
		Size:       listing.PageSize,
		TotalPages: listing.TotalPages(total),
	})
}

// Options lista os supervisores para seleção em formulários
// @Summary Opções de supervisores
// @Description Lista pares (id, nome) de supervisores ordenados por nome
// @Tags supervisors
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.OptionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /supervisors/options [get]
func (c *SupervisorController) Options(ctx *gin.Context) {
	options, err := c.supervisorRepo.ListOptions(ctx)
	if err != nil {
		c.logger.Error("erro ao listar opções de supervisores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar opções", err.Error()))
		return
	}

	responses := make([]dto.OptionResponse, 0, len(options))
	for _, o := range options {
		responses = append(responses, dto.OptionResponse{ID: o.ID, Name: o.Name})
	}

	ctx.JSON(http.StatusOK, responses)
}

// GetByID busca um supervisor pelo ID
// @Summary Buscar supervisor
// @Description Busca um supervisor pelo ID
// @Tags supervisors
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do supervisor"
// @Success 200 {object} dto.SupervisorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /supervisors/{id} [get]
func (c *SupervisorController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	supervisor, err := c.supervisorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupervisorNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "supervisor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar supervisor", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar supervisor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupervisorResponse(supervisor))
}

// Update atualiza um supervisor
// @Summary Atualizar supervisor
// @Description Atualiza os dados de um supervisor existente
// @Tags supervisors
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do supervisor"
// @Param supervisor body dto.SupervisorRequest true "Dados do supervisor"
// @Success 200 {object} dto.SupervisorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /supervisors/{id} [put]
func (c *SupervisorController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.SupervisorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	supervisor, err := c.supervisorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupervisorNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "supervisor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar supervisor", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar supervisor", err.Error()))
		return
	}

	supervisor.Name = req.Name
	supervisor.IDNumber = req.IDNumber
	supervisor.PhoneNumber = req.PhoneNumber
	supervisor.Email = req.Email
	supervisor.City = req.City
	supervisor.District = req.District
	supervisor.Sector = req.Sector
	supervisor.Cell = req.Cell
	supervisor.Village = req.Village
	supervisor.UpdatedAt = time.Now()

	if err := c.supervisorRepo.Update(ctx, supervisor); err != nil {
		c.logger.Error("erro ao atualizar supervisor", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar supervisor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupervisorResponse(supervisor))
}

// Delete remove um supervisor
// @Summary Remover supervisor
// @Description Remove um supervisor do sistema
// @Tags supervisors
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do supervisor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /supervisors/{id} [delete]
func (c *SupervisorController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.supervisorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSupervisorNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "supervisor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover supervisor", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover supervisor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("supervisor removido com sucesso", nil))
}
