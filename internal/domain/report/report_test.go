package report

import "testing"

func TestNetStock(t *testing.T) {
	cases := []struct {
		received, issued, want float64
	}{
		{0, 0, 0},
		{12, 5, 7},
		{5, 12, -7}, // saídas maiores que entradas não são truncadas
		{100.5, 0.5, 100},
	}

	for _, c := range cases {
		if got := NetStock(c.received, c.issued); got != c.want {
			t.Errorf("NetStock(%v, %v) = %v, esperado %v", c.received, c.issued, got, c.want)
		}
	}
}

func TestGrowthPercent(t *testing.T) {
	cases := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{"crescimento simples", 150, 100, 50},
		{"queda", 80, 100, -20},
		{"sem variação", 100, 100, 0},
		{"base zero e atual zero", 0, 0, 0},
		{"base zero com atual positivo", 42, 0, 100},
		{"arredondamento para uma casa", 100, 300, -66.7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := GrowthPercent(c.current, c.previous); got != c.want {
				t.Errorf("GrowthPercent(%v, %v) = %v, esperado %v", c.current, c.previous, got, c.want)
			}
		})
	}
}
