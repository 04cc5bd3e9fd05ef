package usecase

import (
	"context"

	"github.com/crmpartner/proposal-api/internal/domain/proposal"
)

// SnapshotCodec serializa a fotografia da proposta para o token de
// compartilhamento e de volta. Write-once/read-once: não existe update.
type SnapshotCodec interface {
	Encode(snap proposal.Snapshot) (string, error)
	Decode(token string) (*proposal.Snapshot, error)
}

// ProposalPDFGenerator renderiza a proposta imprimível voltada ao cliente.
type ProposalPDFGenerator interface {
	GenerateProposalPDF(ctx context.Context, snap *proposal.Snapshot) ([]byte, error)
}
