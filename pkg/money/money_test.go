package money

import (
	"errors"
	"testing"
)

func TestToCents(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{1, 100},
		{19.99, 1999},
		{20, 2000},
		{0.01, 1},
		{1234.56, 123456},
		{999999.99, 99999999},
	}

	for _, c := range cases {
		got, err := ToCents(c.amount)
		if err != nil {
			t.Errorf("ToCents(%v) retornou erro inesperado: %v", c.amount, err)
			continue
		}
		if got != c.want {
			t.Errorf("ToCents(%v) = %d, esperado %d", c.amount, got, c.want)
		}
	}
}

func TestToCentsRejectsSubCent(t *testing.T) {
	for _, amount := range []float64{19.999, 0.001, 1.005 / 10} {
		if _, err := ToCents(amount); !errors.Is(err, ErrSubCentPrecision) {
			t.Errorf("ToCents(%v) deveria rejeitar fração de centavo, retornou %v", amount, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 0.01, 1, 19.99, 250.5, 1234.56} {
		cents, err := ToCents(amount)
		if err != nil {
			t.Fatalf("ToCents(%v): %v", amount, err)
		}
		if got := FromCents(cents); got != amount {
			t.Errorf("FromCents(ToCents(%v)) = %v", amount, got)
		}
	}
}
