package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/crmpartner/proposal-api/internal/domain/catalog"
)

// PaybackHorizonMonths horizonte da simulação de caixa (meses 0..12).
const PaybackHorizonMonths = 12

// PaybackCurve simula o caixa acumulado do cliente mês a mês: o mês 0 carrega
// o setup como déficit (com piso de catalog.MinSetup) e cada mês seguinte soma
// um delta constante (receita recuperada − mensalidade). Modelo linear, sem
// composição.
func PaybackCurve(setupCost, monthlyPrice, monthlyRecoveredRevenue decimal.Decimal) []PaybackPoint {
	setup := decimal.Max(clampNonNegative(setupCost), catalog.MinSetup)
	net := monthlyRecoveredRevenue.Sub(monthlyPrice)

	points := make([]PaybackPoint, 0, PaybackHorizonMonths+1)
	balance := setup.Neg()
	points = append(points, PaybackPoint{
		Month:             0,
		CumulativeBalance: balance,
		IsPositive:        !balance.IsNegative(),
	})

	for month := 1; month <= PaybackHorizonMonths; month++ {
		balance = balance.Add(net)
		points = append(points, PaybackPoint{
			Month:             month,
			CumulativeBalance: balance,
			IsPositive:        !balance.IsNegative(),
		})
	}
	return points
}

// FindPaybackMonth primeiro mês com índice > 0 de saldo não negativo.
// O mês 0 fica fora da busca mesmo que entradas degeneradas o deixem ≥ 0.
// nil = o investimento não se paga dentro do horizonte (não é erro).
func FindPaybackMonth(points []PaybackPoint) *int {
	for i, p := range points {
		if i == 0 {
			continue
		}
		if p.IsPositive {
			month := p.Month
			return &month
		}
	}
	return nil
}

// YearlyProfit saldo acumulado no último mês do horizonte; pode ser negativo.
func YearlyProfit(points []PaybackPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	return points[len(points)-1].CumulativeBalance
}
