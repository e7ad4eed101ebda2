package dto

import (
	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// SuccessResponse representa uma resposta genérica de sucesso
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ListQuery representa os parâmetros comuns das listagens: busca textual,
// intervalo de datas, safra e página. O tamanho da página é fixo.
type ListQuery struct {
	Query    string `form:"query"`
	From     string `form:"from"`
	To       string `form:"to"`
	SeasonID string `form:"season_id"`
	Page     int    `form:"page"`
}

// ToFilter converte os parâmetros da requisição no filtro de listagem
func (q ListQuery) ToFilter() listing.Filter {
	return listing.Filter{
		Query:    q.Query,
		From:     q.From,
		To:       q.To,
		SeasonID: q.SeasonID,
	}
}

// PageNumber retorna a página solicitada, com a primeira página como padrão
func (q ListQuery) PageNumber() int {
	if q.Page <= 0 {
		return 1
	}
	return q.Page
}

// OptionResponse representa um par (id, nome) para campos de seleção
type OptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
