package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrUnknownPricingModel     = errors.New("modelo de precificação desconhecido")
	ErrUnknownPartnershipModel = errors.New("modelo de parceria desconhecido")
	ErrUnknownPlanLevel        = errors.New("nível de plano desconhecido")
	ErrUnknownTier             = errors.New("faixa de usuários desconhecida")
	ErrInvalidToken            = errors.New("token de proposta inválido")
)
