// Package reconciling monta a grade mensal de desempenho por marca, acompanha as
// edições contra a foto base e produz o lote mínimo de alterações a persistir.
package reconciling

// CalculateIndicators calcula variação e score percentuais de uma linha.
// Sem meta definida, o score é 100 assim que existe qualquer venda.
func CalculateIndicators(actualAmount, goalAmount float64) (variancePct, scorePct float64) {
	if goalAmount > 0 {
		variancePct = (actualAmount - goalAmount) / goalAmount * 100
		scorePct = actualAmount / goalAmount * 100
		return variancePct, scorePct
	}

	if actualAmount > 0 {
		return 0, 100
	}
	return 0, 0
}
