package money

import (
	"errors"
	"math"
)

// ErrSubCentPrecision indica um valor monetário com precisão menor que centavo
var ErrSubCentPrecision = errors.New("valor monetário com fração de centavo")

// ToCents converte um valor de exibição para centavos (unidade mínima).
// Valores com fração de centavo são rejeitados em vez de arredondados,
// garantindo que FromCents(ToCents(x)) == x para todo valor aceito.
func ToCents(amount float64) (int64, error) {
	scaled := amount * 100
	cents := math.Round(scaled)
	if math.Abs(scaled-cents) > 1e-6 {
		return 0, ErrSubCentPrecision
	}
	return int64(cents), nil
}

// FromCents converte centavos para o valor de exibição
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
