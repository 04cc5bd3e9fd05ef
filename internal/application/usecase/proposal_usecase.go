package usecase

import (
	"context"
	"fmt"

	"github.com/crmpartner/proposal-api/internal/application/dto"
	"github.com/crmpartner/proposal-api/internal/domain"
	"github.com/crmpartner/proposal-api/internal/domain/catalog"
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
	"github.com/crmpartner/proposal-api/internal/domain/proposal"
)

// ProposalUseCase gera e decodifica propostas compartilháveis.
type ProposalUseCase struct {
	engine       *pricing.Engine
	codec        SnapshotCodec
	pdf          ProposalPDFGenerator
	validityDays int
}

// NewProposalUseCase constrói o caso de uso.
func NewProposalUseCase(engine *pricing.Engine, codec SnapshotCodec, pdf ProposalPDFGenerator, validityDays int) *ProposalUseCase {
	return &ProposalUseCase{engine: engine, codec: codec, pdf: pdf, validityDays: validityDays}
}

// Create avalia a configuração, captura a fotografia da proposta e emite o
// token de compartilhamento. Nada é gravado no servidor: o token é o registro.
func (uc *ProposalUseCase) Create(in dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	if in.Client.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}

	result, err := uc.engine.Evaluate(in.Config)
	if err != nil {
		return nil, fmt.Errorf("proposta: avaliar configuração: %w", err)
	}

	tier, err := resolveTier(in.Config)
	if err != nil {
		return nil, fmt.Errorf("proposta: %w", err)
	}

	snap := proposal.New(
		in.Client,
		tier.LinkedPlan,
		tier.Label,
		in.Config,
		*result,
		in.CheckoutURL,
		uc.validityDays,
	)

	token, err := uc.codec.Encode(snap)
	if err != nil {
		return nil, fmt.Errorf("proposta: codificar token: %w", err)
	}

	return &dto.ProposalResponse{
		Snapshot:  &snap,
		Token:     token,
		SharePath: "/api/proposals/" + token,
	}, nil
}

// Decode abre a fotografia a partir do token (leitura única, sem storage).
func (uc *ProposalUseCase) Decode(token string) (*proposal.Snapshot, error) {
	snap, err := uc.codec.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("proposta: %w", err)
	}
	return snap, nil
}

// RenderPDF abre a proposta do token e gera sua versão imprimível.
func (uc *ProposalUseCase) RenderPDF(ctx context.Context, token string) ([]byte, error) {
	snap, err := uc.Decode(token)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.GenerateProposalPDF(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("proposta: gerar pdf: %w", err)
	}
	return data, nil
}

func resolveTier(cfg pricing.Config) (catalog.UserTier, error) {
	if cfg.TierID != "" {
		return catalog.TierByID(cfg.TierID)
	}
	return catalog.TierForUsers(cfg.UserCount), nil
}
