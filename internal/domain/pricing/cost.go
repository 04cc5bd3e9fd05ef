package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/crmpartner/proposal-api/internal/domain/catalog"
)

// InternalCost custo do provedor para atender a conta: assentos de CRM mais
// módulos ativos. WhatsApp sozinho não soma (custo embutido no módulo de IA);
// IA só soma com WhatsApp ativo — o invariante de dependência deve ter sido
// aplicado antes via Normalized, mas a condição dupla segue a tabela do
// catálogo.
//
// Assentos negativos são saneados para zero e o total de assentos cobráveis
// é limitado a catalog.MaxBillableSeats.
func InternalCost(features FeatureSelection, userCount int) decimal.Decimal {
	if userCount < 0 {
		userCount = 0
	}
	if userCount > catalog.MaxBillableSeats {
		userCount = catalog.MaxBillableSeats
	}

	cost := decimal.Zero
	if features.CRM {
		cost = cost.Add(catalog.CRMCostPerSeat.Mul(decimal.NewFromInt(int64(userCount))))
	}
	if features.AI && features.WhatsApp {
		cost = cost.Add(catalog.AIAgentCost)
	}
	if features.Conversions {
		cost = cost.Add(catalog.ConversionsCost)
	}
	return cost
}
