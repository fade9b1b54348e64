package utils

import "github.com/shopspring/decimal"

// Round arredonda para a quantidade de casas informada, sem erro de ponto flutuante
func Round(f float64, places int32) float64 {
	if f == 0 {
		return 0
	}

	rounded, _ := decimal.NewFromFloat(f).Round(places).Float64()
	return rounded
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}
