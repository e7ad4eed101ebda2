package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/api/dto"
	"github.com/hugohenrick/agro-dashboard/internal/adapter/repository"
	customerdomain "github.com/hugohenrick/agro-dashboard/internal/domain/customer"
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
	"github.com/hugohenrick/agro-dashboard/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no sistema
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	customer, err := customerdomain.NewCustomer(req.Name, req.Email, req.ImageURL)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, customer); err != nil {
		c.logger.Error("erro ao criar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// List lista os clientes
// @Summary Listar clientes
// @Description Lista os clientes paginados com os totais de vendas agregados
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param query query string false "Busca textual"
// @Param page query int false "Página"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	filter := q.ToFilter()
	page := q.PageNumber()

	rows, err := c.customerRepo.List(ctx, filter, page)
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	total, err := c.customerRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao contar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.CustomerListResponse{
		Items:      dto.ToCustomerListItems(rows),
		Total:      total,
		Page:       page,
		Size:       listing.PageSize,
		TotalPages: listing.TotalPages(total),
	})
}

// Options lista os clientes para seleção em formulários
// @Summary Opções de clientes
// @Description Lista pares (id, nome) de clientes ordenados por nome
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.OptionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/options [get]
func (c *CustomerController) Options(ctx *gin.Context) {
	options, err := c.customerRepo.ListOptions(ctx)
	if err != nil {
		c.logger.Error("erro ao listar opções de clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar opções", err.Error()))
		return
	}

	responses := make([]dto.OptionResponse, 0, len(options))
	for _, o := range options {
		responses = append(responses, dto.OptionResponse{ID: o.ID, Name: o.Name})
	}

	ctx.JSON(http.StatusOK, responses)
}

// GetByID busca um cliente pelo ID
// @Summary Buscar cliente
// @Description Busca um cliente pelo ID
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Description Atualiza os dados de um cliente existente
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.ImageURL = req.ImageURL
	customer.UpdatedAt = time.Now()

	if err := c.customerRepo.Update(ctx, customer); err != nil {
		c.logger.Error("erro ao atualizar cliente", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Delete remove um cliente
// @Summary Remover cliente
// @Description Remove um cliente do sistema
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover cliente", "error", err, "id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente removido com sucesso", nil))
}
