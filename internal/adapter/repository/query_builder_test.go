package repository

import (
	"reflect"
	"testing"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

func TestWhereBuilderEmpty(t *testing.T) {
	b := newWhereBuilder()
	b.ApplyFilter(listing.Filter{}, []string{"name"}, "created_at", "season_id")

	if clause := b.Clause(); clause != "" {
		t.Errorf("cláusula deveria ser vazia, obteve %q", clause)
	}
	if len(b.Args()) != 0 {
		t.Errorf("argumentos deveriam ser vazios, obteve %v", b.Args())
	}
}

func TestWhereBuilderTextSearch(t *testing.T) {
	b := newWhereBuilder()
	b.TextSearch("maria", "f.name", "f.email")

	want := " WHERE (f.name ILIKE $1 OR f.email ILIKE $1)"
	if clause := b.Clause(); clause != want {
		t.Errorf("cláusula = %q, esperava %q", clause, want)
	}
	if !reflect.DeepEqual(b.Args(), []interface{}{"%maria%"}) {
		t.Errorf("argumentos = %v", b.Args())
	}
}

func TestWhereBuilderDateRange(t *testing.T) {
	b := newWhereBuilder()
	b.DateRange("g.date", "2024-01-01", "2024-03-31")

	want := " WHERE g.date >= $1 AND g.date <= $2"
	if clause := b.Clause(); clause != want {
		t.Errorf("cláusula = %q, esperava %q", clause, want)
	}
	if !reflect.DeepEqual(b.Args(), []interface{}{"2024-01-01", "2024-03-31"}) {
		t.Errorf("argumentos = %v", b.Args())
	}
}

func TestWhereBuilderAllDimensions(t *testing.T) {
	f := listing.Filter{
		Query:    "chia",
		From:     "2024-01-01",
		To:       "2024-06-30",
		SeasonID: "s-1",
	}

	b := newWhereBuilder()
	b.ApplyFilter(f, []string{"p.name", "f.name"}, "g.date", "g.season_id")

	want := " WHERE (p.name ILIKE $1 OR f.name ILIKE $1)" +
		" AND g.date >= $2 AND g.date <= $3 AND g.season_id = $4"
	if clause := b.Clause(); clause != want {
		t.Errorf("cláusula = %q, esperava %q", clause, want)
	}

	wantArgs := []interface{}{"%chia%", "2024-01-01", "2024-06-30", "s-1"}
	if !reflect.DeepEqual(b.Args(), wantArgs) {
		t.Errorf("argumentos = %v, esperava %v", b.Args(), wantArgs)
	}
}

// Cada combinação de dimensões presentes deve numerar os placeholders na
// ordem texto, intervalo, safra, sem lacunas.
func TestWhereBuilderCombinations(t *testing.T) {
	cases := []struct {
		name       string
		filter     listing.Filter
		wantClause string
		wantArgs   int
	}{
		{
			name:       "somente texto",
			filter:     listing.Filter{Query: "a"},
			wantClause: " WHERE (name ILIKE $1)",
			wantArgs:   1,
		},
		{
			name:       "somente intervalo",
			filter:     listing.Filter{From: "2024-01-01", To: "2024-01-31"},
			wantClause: " WHERE date >= $1 AND date <= $2",
			wantArgs:   2,
		},
		{
			name:       "somente safra",
			filter:     listing.Filter{SeasonID: "s-1"},
			wantClause: " WHERE season_id = $1",
			wantArgs:   1,
		},
		{
			name:       "texto e safra",
			filter:     listing.Filter{Query: "a", SeasonID: "s-1"},
			wantClause: " WHERE (name ILIKE $1) AND season_id = $2",
			wantArgs:   2,
		},
		{
			name:       "intervalo e safra",
			filter:     listing.Filter{From: "2024-01-01", To: "2024-01-31", SeasonID: "s-1"},
			wantClause: " WHERE date >= $1 AND date <= $2 AND season_id = $3",
			wantArgs:   3,
		},
		{
			name:       "texto e intervalo",
			filter:     listing.Filter{Query: "a", From: "2024-01-01", To: "2024-01-31"},
			wantClause: " WHERE (name ILIKE $1) AND date >= $2 AND date <= $3",
			wantArgs:   3,
		},
		{
			name:       "intervalo incompleto é ignorado",
			filter:     listing.Filter{Query: "a", From: "2024-01-01"},
			wantClause: " WHERE (name ILIKE $1)",
			wantArgs:   1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newWhereBuilder()
			b.ApplyFilter(tc.filter, []string{"name"}, "date", "season_id")

			if clause := b.Clause(); clause != tc.wantClause {
				t.Errorf("cláusula = %q, esperava %q", clause, tc.wantClause)
			}
			if len(b.Args()) != tc.wantArgs {
				t.Errorf("argumentos = %d, esperava %d", len(b.Args()), tc.wantArgs)
			}
		})
	}
}

func TestWhereBuilderPaginate(t *testing.T) {
	b := newWhereBuilder()
	b.TextSearch("a", "name")

	suffix := b.Paginate(3)
	if suffix != " LIMIT $2 OFFSET $3" {
		t.Errorf("sufixo = %q", suffix)
	}

	wantArgs := []interface{}{"%a%", listing.PageSize, 16}
	if !reflect.DeepEqual(b.Args(), wantArgs) {
		t.Errorf("argumentos = %v, esperava %v", b.Args(), wantArgs)
	}
}

func TestWhereBuilderSkipsDisabledDimensions(t *testing.T) {
	f := listing.Filter{
		Query:    "a",
		From:     "2024-01-01",
		To:       "2024-01-31",
		SeasonID: "s-1",
	}

	// Sem coluna de data nem de safra, só a busca textual entra
	b := newWhereBuilder()
	b.ApplyFilter(f, []string{"name"}, "", "")

	want := " WHERE (name ILIKE $1)"
	if clause := b.Clause(); clause != want {
		t.Errorf("cláusula = %q, esperava %q", clause, want)
	}
}
