package dto

import (
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
)

// QuoteRequest corpo de POST /api/quotes: a configuração completa da
// proposta. Os catálogos são fechados — chaves fora dos structs de seleção
// simplesmente não existem no shape e são descartadas na borda.
type QuoteRequest struct {
	pricing.Config
}

// QuoteResponse resultado da avaliação do motor mais os principais valores
// já formatados em pt-BR para exibição direta.
type QuoteResponse struct {
	*pricing.Result
	Formatted QuoteFormatted `json:"formatted"`
}

// QuoteFormatted valores monetários prontos para a tela ("R$ 1.234,56").
type QuoteFormatted struct {
	SetupTotal       string `json:"setup_total"`
	FinalMonthly     string `json:"final_monthly"`
	InternalCost     string `json:"internal_cost"`
	RecoveredRevenue string `json:"recovered_revenue"`
	YearlyProfit     string `json:"yearly_profit"`
}
