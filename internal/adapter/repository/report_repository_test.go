package repository

import (
	"reflect"
	"testing"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

// As agregações do painel filtram com os mesmos conjuntos de colunas de
// busca das listagens; um filtro com texto deve produzir a cláusula ILIKE
// também nos agregados, nunca ser descartado.
func TestDashboardFilterKeepsTextDimension(t *testing.T) {
	f := listing.Filter{Query: "maria"}

	cases := []struct {
		name       string
		columns    []string
		dateColumn string
		seasonCol  string
		wantClause string
	}{
		{
			name:       "agregado de faturas",
			columns:    invoiceSearchColumns,
			dateColumn: "i.date",
			seasonCol:  "f.season_id",
			wantClause: " WHERE (f.name ILIKE $1 OR f.email ILIKE $1" +
				" OR (i.amount_cents / 100.0)::text ILIKE $1" +
				" OR i.date::text ILIKE $1 OR i.status ILIKE $1)",
		},
		{
			name:       "agregado de produtores",
			columns:    farmerSearchColumns,
			dateColumn: "f.created_at",
			seasonCol:  "f.season_id",
			wantClause: " WHERE (f.name ILIKE $1 OR f.email ILIKE $1" +
				" OR f.city ILIKE $1 OR f.district ILIKE $1 OR f.sector ILIKE $1)",
		},
		{
			name:       "soma de entradas",
			columns:    receiptSearchColumns,
			dateColumn: "g.date",
			seasonCol:  "g.season_id",
			wantClause: " WHERE (f.name ILIKE $1 OR p.name ILIKE $1)",
		},
		{
			name:       "soma de saídas",
			columns:    issueSearchColumns,
			dateColumn: "s.date",
			seasonCol:  "s.season_id",
			wantClause: " WHERE (c.name ILIKE $1 OR p.name ILIKE $1)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newWhereBuilder()
			b.ApplyFilter(f, tc.columns, tc.dateColumn, tc.seasonCol)

			if clause := b.Clause(); clause != tc.wantClause {
				t.Errorf("cláusula = %q, esperava %q", clause, tc.wantClause)
			}
			if !reflect.DeepEqual(b.Args(), []interface{}{"%maria%"}) {
				t.Errorf("argumentos = %v", b.Args())
			}
		})
	}
}

// Todas as dimensões combinadas sobre as colunas da soma de movimento,
// como compostas pelos cartões do painel
func TestDashboardFilterAllDimensions(t *testing.T) {
	f := listing.Filter{
		Query:    "chia",
		From:     "2025-01-01",
		To:       "2025-06-30",
		SeasonID: "s-1",
	}

	b := newWhereBuilder()
	b.ApplyFilter(f, receiptSearchColumns, "g.date", "g.season_id")

	want := " WHERE (f.name ILIKE $1 OR p.name ILIKE $1)" +
		" AND g.date >= $2 AND g.date <= $3 AND g.season_id = $4"
	if clause := b.Clause(); clause != want {
		t.Errorf("cláusula = %q, esperava %q", clause, want)
	}

	wantArgs := []interface{}{"%chia%", "2025-01-01", "2025-06-30", "s-1"}
	if !reflect.DeepEqual(b.Args(), wantArgs) {
		t.Errorf("argumentos = %v, esperava %v", b.Args(), wantArgs)
	}
}
