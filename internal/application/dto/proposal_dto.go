package dto

import (
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
	"github.com/crmpartner/proposal-api/internal/domain/proposal"
)

// CreateProposalRequest corpo de POST /api/proposals.
type CreateProposalRequest struct {
	Client proposal.ClientData `json:"client"`
	Config pricing.Config      `json:"config"`
	// CheckoutURL link estático de pagamento exibido na proposta (opcional).
	CheckoutURL string `json:"checkout_url,omitempty"`
}

// ProposalResponse proposta gerada com o token de compartilhamento.
// O token carrega a fotografia inteira — não há nada gravado no servidor.
type ProposalResponse struct {
	Snapshot  *proposal.Snapshot `json:"proposal"`
	Token     string             `json:"token"`
	SharePath string             `json:"share_path"`
}
