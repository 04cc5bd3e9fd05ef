// Package proposal define a fotografia imutável de uma proposta comercial:
// configuração, resultados calculados e janela de validade. É a única
// entidade "persistida" do sistema — gravada uma vez dentro do token de
// compartilhamento e lida uma vez na abertura do link, sem API de update.
package proposal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crmpartner/proposal-api/internal/domain/catalog"
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
)

// ClientData dados do cliente exibidos na proposta.
type ClientData struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Origin      string `json:"origin,omitempty"`
}

// Snapshot cópia capturada da proposta. Criada uma vez, nunca mutada.
type Snapshot struct {
	ID         string    `json:"proposal_id"`
	CreatedAt  time.Time `json:"created_at"`
	ValidUntil time.Time `json:"valid_until"`

	Client    ClientData        `json:"client"`
	Plan      catalog.PlanLevel `json:"plan"`
	TierLabel string            `json:"tier_label"`

	Config pricing.Config `json:"config"`
	Result pricing.Result `json:"result"`

	// CheckoutURL link estático de pagamento (Stripe/PIX); exibição apenas,
	// nenhuma transação é disparada daqui.
	CheckoutURL string `json:"checkout_url,omitempty"`
}

// NewID gera um identificador legível de proposta, ex.: "PROP-9F3A1C0B74DE".
func NewID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "PROP-" + raw[:12]
}

// New captura uma proposta com validade em dias a partir de agora.
func New(client ClientData, plan catalog.PlanLevel, tierLabel string, cfg pricing.Config, res pricing.Result, checkoutURL string, validityDays int) Snapshot {
	now := time.Now().UTC()
	if validityDays <= 0 {
		validityDays = 15
	}
	return Snapshot{
		ID:          NewID(),
		CreatedAt:   now,
		ValidUntil:  now.AddDate(0, 0, validityDays),
		Client:      client,
		Plan:        plan,
		TierLabel:   tierLabel,
		Config:      cfg,
		Result:      res,
		CheckoutURL: checkoutURL,
	}
}

// Expired informa se a proposta passou da validade no instante dado.
func (s Snapshot) Expired(at time.Time) bool {
	return at.After(s.ValidUntil)
}
