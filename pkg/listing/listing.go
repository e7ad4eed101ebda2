package listing

// PageSize é o tamanho fixo de página das listagens do painel
const PageSize = 8

// Filter agrupa as dimensões opcionais de filtro das listagens: texto livre,
// intervalo de datas (inclusivo nas duas pontas) e safra. Dimensões vazias
// não participam da consulta; as presentes combinam por AND.
type Filter struct {
	Query    string
	From     string
	To       string
	SeasonID string
}

// HasQuery indica se o filtro de texto foi informado
func (f Filter) HasQuery() bool {
	return f.Query != ""
}

// HasDateRange indica se o intervalo de datas foi informado
func (f Filter) HasDateRange() bool {
	return f.From != "" && f.To != ""
}

// HasSeason indica se o filtro de safra foi informado
func (f Filter) HasSeason() bool {
	return f.SeasonID != ""
}

// IsEmpty indica que nenhuma dimensão foi informada (listagem completa)
func (f Filter) IsEmpty() bool {
	return !f.HasQuery() && !f.HasDateRange() && !f.HasSeason()
}

// Offset converte o número de página (base 1) em deslocamento de linhas.
// Páginas menores que 1 são tratadas como a primeira.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// TotalPages calcula o número total de páginas a partir do total de registros
func TotalPages(totalCount int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + PageSize - 1) / PageSize
}
