// Package usecase contém os casos de uso do configurador: cotação, geração
// de proposta compartilhável e pré-orçamento via wizard de vendas.
package usecase

import (
	"fmt"

	"github.com/crmpartner/proposal-api/internal/application/dto"
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
	"github.com/crmpartner/proposal-api/pkg/brl"
)

// QuoteUseCase avalia uma configuração e monta a resposta de cotação.
type QuoteUseCase struct {
	engine *pricing.Engine
}

// NewQuoteUseCase constrói o caso de uso.
func NewQuoteUseCase(engine *pricing.Engine) *QuoteUseCase {
	return &QuoteUseCase{engine: engine}
}

// Evaluate roda o motor sobre a configuração e anexa os valores formatados.
func (uc *QuoteUseCase) Evaluate(cfg pricing.Config) (*dto.QuoteResponse, error) {
	result, err := uc.engine.Evaluate(cfg)
	if err != nil {
		return nil, fmt.Errorf("cotação: %w", err)
	}

	return &dto.QuoteResponse{
		Result: result,
		Formatted: dto.QuoteFormatted{
			SetupTotal:       brl.Format(result.SetupTotal),
			FinalMonthly:     brl.Format(result.FinalMonthly),
			InternalCost:     brl.Format(result.InternalCost),
			RecoveredRevenue: brl.FormatInt(result.ROI.RecoveredRevenue),
			YearlyProfit:     brl.Format(result.YearlyProfit),
		},
	}, nil
}
