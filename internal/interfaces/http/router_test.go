package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmpartner/proposal-api/internal/application/usecase"
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
	infrapdf "github.com/crmpartner/proposal-api/internal/infrastructure/pdf"
	"github.com/crmpartner/proposal-api/internal/infrastructure/share"
	apphttp "github.com/crmpartner/proposal-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta a aplicação Fiber completa com dependências reais:
// o motor é puro e o "storage" é o próprio token, então não há nada a mockar.
func buildTestApp() *fiber.App {
	engine := pricing.NewEngine(pricing.RequiredLocked)
	codec := share.NewCodec()
	pdfGenerator := infrapdf.NewMarotoProposalGenerator("CRM Partner")

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:  usecase.NewCatalogUseCase(),
		QuoteUC:    usecase.NewQuoteUseCase(engine),
		WizardUC:   usecase.NewWizardUseCase(),
		ProposalUC: usecase.NewProposalUseCase(engine, codec, pdfGenerator, 15),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const quoteBody = `{
	"pricing_model": "markup",
	"partnership_model": "whitelabel",
	"features": {"crm": true, "whatsapp": true},
	"user_count": 5,
	"markup_percent": 100,
	"roi_inputs": {
		"ticket_medio": 2000,
		"leads_per_month": 100,
		"current_conversion_rate": 5,
		"conversion_improvement": 20
	}
}`

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/catalog
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_DevolveTabelasCompletas(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["plans"], 3)
	assert.Len(t, body["pricing_models"], 4)
	assert.Len(t, body["user_tiers"], 6)
	assert.Len(t, body["volume_bands"], 6)
	assert.NotNil(t, body["rules"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/quotes
// ──────────────────────────────────────────────────────────────────────────────

func TestQuotes_AvaliacaoCompleta(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/quotes", quoteBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "200", body["final_monthly"], "custo 100 com markup 100%% vende por 200")
	assert.Equal(t, "500", body["setup_total"])

	formatted, ok := body["formatted"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "R$ 200,00", formatted["final_monthly"])
}

func TestQuotes_CorpoInvalido(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/quotes", `{"user_count": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuotes_ModeloForaDoCatalogo(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/quotes", `{"pricing_model": "leilao"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "UNKNOWN_OPTION", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/wizard/preset
// ──────────────────────────────────────────────────────────────────────────────

func TestWizard_PresetDaEquipe(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/wizard/preset", `{"team_size": 15, "wants_ai": true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "pro", body["plan"])
	assert.Equal(t, "tier_20", body["tier_id"])
	assert.Equal(t, "fixed_tier", body["pricing_model"])
}

func TestWizard_EquipeZeradaRejeitada(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/wizard/preset", `{"team_size": 0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/proposals + GET /api/proposals/:token
// ──────────────────────────────────────────────────────────────────────────────

func proposalBody() string {
	return `{
		"client": {"company_name": "Padaria Estrela", "contact_name": "Ana", "email": "ana@estrela.com.br"},
		"config": ` + quoteBody + `
	}`
}

func TestProposals_CriarEReabrirPeloToken(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/proposals/", proposalBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody(t, resp)
	token, ok := created["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// Reabrir em outra "sessão": só o token, nenhum estado de servidor.
	resp = doJSON(t, app, http.MethodGet, "/api/proposals/"+token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snap := decodeBody(t, resp)
	client, ok := snap["client"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Padaria Estrela", client["company_name"])
}

func TestProposals_SemEmpresaRejeitada(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/proposals/", `{"client": {}, "config": {}}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestProposals_TokenAdulterado(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/proposals/nao-e-um-token", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestProposals_PDFDoToken(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/proposals/", proposalBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token := decodeBody(t, resp)["token"].(string)

	resp = doJSON(t, app, http.MethodGet, "/api/proposals/"+token+"/pdf", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "o corpo deve ser um documento PDF")
}
