package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Engine EngineConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
	// Brand nome white label exibido nas propostas geradas (tela e PDF).
	Brand string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Políticas para serviços obrigatórios do catálogo (ex.: onboarding).
const (
	// RequiredLocked: serviços obrigatórios sempre entram no setup,
	// independente da seleção enviada pelo vendedor.
	RequiredLocked = "locked"
	// RequiredOptional: serviços obrigatórios contam apenas quando selecionados.
	RequiredOptional = "optional"
)

// EngineConfig políticas do motor de precificação.
type EngineConfig struct {
	// RequiredServices: "locked" ou "optional". Ver constantes acima.
	RequiredServices string
	// ProposalValidityDays validade da proposta gerada, em dias.
	ProposalValidityDays int
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, ENGINE_REQUIRED_SERVICES, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:   getString(v, "APP_ENV", "development"),
			Name:  getString(v, "APP_NAME", "crm-partner-proposals"),
			Brand: getString(v, "APP_BRAND", "CRM Partner"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Engine: EngineConfig{
			RequiredServices:     getString(v, "ENGINE_REQUIRED_SERVICES", RequiredLocked),
			ProposalValidityDays: getInt(v, "PROPOSAL_VALIDITY_DAYS", 15),
		},
	}

	if cfg.Engine.RequiredServices != RequiredLocked && cfg.Engine.RequiredServices != RequiredOptional {
		return nil, fmt.Errorf("config: ENGINE_REQUIRED_SERVICES inválido: %q", cfg.Engine.RequiredServices)
	}
	if cfg.Engine.ProposalValidityDays <= 0 {
		cfg.Engine.ProposalValidityDays = 15
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
