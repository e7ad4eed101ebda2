package listing

import "testing"

func TestOffset(t *testing.T) {
	cases := []struct {
		page int
		want int
	}{
		{1, 0},
		{2, 8},
		{3, 16},
		{10, 72},
		{0, 0},
		{-5, 0},
	}

	for _, c := range cases {
		if got := Offset(c.page); got != c.want {
			t.Errorf("Offset(%d) = %d, esperado %d", c.page, got, c.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
		{-3, 0},
	}

	for _, c := range cases {
		if got := TotalPages(c.count); got != c.want {
			t.Errorf("TotalPages(%d) = %d, esperado %d", c.count, got, c.want)
		}
	}
}

func TestFilterDimensions(t *testing.T) {
	empty := Filter{}
	if !empty.IsEmpty() {
		t.Error("filtro vazio deveria reportar IsEmpty")
	}

	f := Filter{Query: "chia"}
	if f.IsEmpty() || !f.HasQuery() || f.HasDateRange() || f.HasSeason() {
		t.Errorf("dimensões incorretas para filtro de texto: %+v", f)
	}

	// Intervalo exige as duas pontas
	half := Filter{From: "2024-01-01"}
	if half.HasDateRange() {
		t.Error("intervalo com apenas uma ponta não deveria contar como presente")
	}

	full := Filter{Query: "q", From: "2024-01-01", To: "2024-02-01", SeasonID: "s1"}
	if !full.HasQuery() || !full.HasDateRange() || !full.HasSeason() {
		t.Errorf("todas as dimensões deveriam estar presentes: %+v", full)
	}
}
