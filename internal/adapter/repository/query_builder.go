package repository

import (
	"fmt"
	"strings"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// whereBuilder monta cláusulas WHERE incrementalmente, numerando os
// placeholders na ordem em que os argumentos são adicionados. Cada condição
// adicionada combina por AND com as anteriores.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

func newWhereBuilder() *whereBuilder {
	return &whereBuilder{}
}

// next registra um argumento e retorna o placeholder correspondente
func (b *whereBuilder) next(arg interface{}) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

// TextSearch adiciona uma busca por substring (ILIKE) sobre as colunas
// informadas, combinadas por OR. As colunas podem ser expressões, como
// "i.amount::text".
func (b *whereBuilder) TextSearch(query string, columns ...string) {
	if query == "" || len(columns) == 0 {
		return
	}

	placeholder := b.next("%" + query + "%")
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE %s", col, placeholder))
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
}

// DateRange adiciona um intervalo de datas inclusivo nas duas pontas
func (b *whereBuilder) DateRange(column, from, to string) {
	if from == "" || to == "" {
		return
	}
	b.conds = append(b.conds, fmt.Sprintf("%s >= %s", column, b.next(from)))
	b.conds = append(b.conds, fmt.Sprintf("%s <= %s", column, b.next(to)))
}

// Equal adiciona uma igualdade simples
func (b *whereBuilder) Equal(column string, value interface{}) {
	b.conds = append(b.conds, fmt.Sprintf("%s = %s", column, b.next(value)))
}

// ApplyFilter traduz as dimensões presentes do filtro de listagem em
// condições: busca textual sobre textColumns, intervalo sobre dateColumn e
// igualdade sobre seasonColumn. Colunas vazias desligam a dimensão
// correspondente.
func (b *whereBuilder) ApplyFilter(f listing.Filter, textColumns []string, dateColumn, seasonColumn string) {
	if f.HasQuery() {
		b.TextSearch(f.Query, textColumns...)
	}
	if f.HasDateRange() && dateColumn != "" {
		b.DateRange(dateColumn, f.From, f.To)
	}
	if f.HasSeason() && seasonColumn != "" {
		b.Equal(seasonColumn, f.SeasonID)
	}
}

// Paginate registra limite e deslocamento da página informada e retorna o
// sufixo LIMIT/OFFSET, prosseguindo a numeração dos placeholders
func (b *whereBuilder) Paginate(page int) string {
	limit := b.next(listing.PageSize)
	offset := b.next(listing.Offset(page))
	return fmt.Sprintf(" LIMIT %s OFFSET %s", limit, offset)
}

// Clause retorna a cláusula WHERE completa, ou a string vazia quando nenhuma
// condição foi adicionada. A cláusula já inclui o espaço inicial.
func (b *whereBuilder) Clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args retorna os argumentos na ordem dos placeholders
func (b *whereBuilder) Args() []interface{} {
	return b.args
}
