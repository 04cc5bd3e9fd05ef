// Package pdf implementa a versão imprimível da proposta comercial enviada
// ao cliente.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa do cliente  │  Nº Proposta + Data           │
//	│  ───────────────────────────────────────────────────────────│
//	│  PARA: contato + email       │  VALIDADE                     │
//	│  PLANO: nível + faixa + funcionalidades ativas               │
//	│  IMPLEMENTAÇÃO: serviços selecionados + total de setup       │
//	│  PROJEÇÃO: receita antes/depois + receita recuperada         │
//	│  INVESTIMENTO: pagar hoje (setup) | mensal                   │
//	│  FOOTER: payback + validade + link de assinatura             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/crmpartner/proposal-api/internal/domain/catalog"
	"github.com/crmpartner/proposal-api/internal/domain/proposal"
	"github.com/crmpartner/proposal-api/pkg/brl"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235} // azul da marca
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 163, Blue: 74}
	colorOrange  = &props.Color{Red: 234, Green: 88, Blue: 12}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoProposalGenerator implementa usecase.ProposalPDFGenerator usando Maroto v2.
type MarotoProposalGenerator struct {
	systemName string
}

// NewMarotoProposalGenerator constrói o gerador. systemName é o nome white
// label exibido no cabeçalho (ex.: "CRM Partner").
func NewMarotoProposalGenerator(systemName string) *MarotoProposalGenerator {
	return &MarotoProposalGenerator{systemName: systemName}
}

// GenerateProposalPDF gera o PDF e devolve seus bytes.
func (g *MarotoProposalGenerator) GenerateProposalPDF(_ context.Context, snap *proposal.Snapshot) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Proposta Comercial", true).
		WithAuthor(g.systemName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(snap, g.systemName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(snap))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(planRows(snap)...)
	m.AddRows(serviceRows(snap)...)

	if snap.Result.ROI.RecoveredRevenue.IsPositive() {
		m.AddRows(roiRows(snap)...)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(investmentRow(snap))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(snap)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: empresa do cliente (esq) e número + data da proposta (dir).
func headerRow(snap *proposal.Snapshot, systemName string) core.Row {
	company := snap.Client.CompanyName
	if company == "" {
		company = "Sua Empresa"
	}
	date := snap.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(systemName+" — Plataforma de Vendas Inteligente", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PROPOSTA COMERCIAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(snap.ID, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: contato (esq) e validade (dir).
func clientRow(snap *proposal.Snapshot) core.Row {
	contact := nonEmpty(snap.Client.ContactName, "—")
	email := nonEmpty(snap.Client.Email, "—")
	validade := snap.ValidUntil.Format("02/01/2006")

	return row.New(14).Add(
		col.New(7).Add(
			text.New("PARA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(contact, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(email, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("VALIDADE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(validade, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
		),
	)
}

// planRows: plano, faixa de usuários e funcionalidades ativas.
func planRows(snap *proposal.Snapshot) []core.Row {
	features := snap.Config.Features.Normalized()
	labels := []struct {
		name   string
		active bool
	}{
		{"CRM & Pipeline", features.CRM},
		{"WhatsApp Oficial", features.WhatsApp},
		{"Agente de IA", features.AI},
		{"Conversões", features.Conversions},
	}

	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Plano %s — %s", planLabel(snap.Plan), snap.TierLabel), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 2,
			}),
		)),
	}
	for _, f := range labels {
		mark, color := "—", colorGray
		if f.active {
			mark, color = "•", colorGreen
		}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(mark, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: color, Top: 1,
			})),
			col.New(11).Add(text.New(f.name, props.Text{Size: 9, Top: 1})),
		))
	}
	return rows
}

// serviceRows: serviços de implantação cobrados e o total de setup.
func serviceRows(snap *proposal.Snapshot) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Implementação", props.Text{Style: fontstyle.Bold, Size: 11, Top: 3}),
		)),
	}

	for _, s := range catalog.Services {
		if !snap.Config.Services.Selected(s.ID) && !s.Required {
			continue
		}
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(s.Label, props.Text{Size: 9, Top: 1})),
			col.New(4).Add(text.New(brl.Format(s.Cost), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			})),
		))
	}

	rows = append(rows, row.New(8).Add(
		col.New(8).Add(text.New("Total de implantação", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		})),
		col.New(4).Add(text.New(brl.Format(snap.Result.SetupTotal), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorOrange,
		})),
	))
	return rows
}

// roiRows: projeção de resultados alimentada pela calculadora de ROI.
func roiRows(snap *proposal.Snapshot) []core.Row {
	roi := snap.Result.ROI
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Projeção de Resultados", props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 3, Color: colorGreen,
			}),
		)),
		row.New(6).Add(
			col.New(8).Add(text.New("Receita mensal atual", props.Text{Size: 9, Top: 1})),
			col.New(4).Add(text.New(brl.FormatInt(roi.CurrentRevenue), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			})),
		),
		row.New(6).Add(
			col.New(8).Add(text.New("Receita mensal projetada", props.Text{Size: 9, Top: 1})),
			col.New(4).Add(text.New(brl.FormatInt(roi.ProjectedRevenue), props.Text{
				Size: 9, Align: align.Right, Top: 1, Color: colorGreen,
			})),
		),
		row.New(8).Add(
			col.New(8).Add(text.New("Receita recuperada", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			})),
			col.New(4).Add(text.New("+"+brl.FormatInt(roi.RecoveredRevenue)+"/mês", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorGreen,
			})),
		),
	}
	return rows
}

// investmentRow: bloco de investimento — pagar hoje (setup) e mensalidade.
func investmentRow(snap *proposal.Snapshot) core.Row {
	return row.New(20).Add(
		col.New(6).Add(
			text.New("PAGAR HOJE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorOrange, Top: 3,
			}),
			text.New(brl.Format(snap.Result.SetupTotal), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 9,
			}),
		),
		col.New(6).Add(
			text.New("MENSAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorPrimary, Top: 3,
			}),
			text.New(brl.Format(snap.Result.FinalMonthly)+"/mês", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 9,
			}),
		),
	)
}

// footerRows: payback, validade e link de assinatura (quando configurado).
func footerRows(snap *proposal.Snapshot) []core.Row {
	payback := "não há payback dentro de 12 meses"
	if snap.Result.PaybackMonth != nil {
		payback = fmt.Sprintf("payback estimado no mês %d", *snap.Result.PaybackMonth)
	}

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Com a projeção informada, %s. Proposta válida até %s.",
				payback, snap.ValidUntil.Format("02/01/2006")), props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)),
	}
	if snap.CheckoutURL != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Assine em: "+snap.CheckoutURL, props.Text{
				Size: 8, Color: colorPrimary, Top: 1,
			}),
		)))
	}
	return rows
}

func planLabel(p catalog.PlanLevel) string {
	switch p {
	case catalog.PlanStart:
		return "Start"
	case catalog.PlanPro:
		return "Pro"
	case catalog.PlanEnterprise:
		return "Enterprise"
	}
	return string(p)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
