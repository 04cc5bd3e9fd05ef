package pricing

import "github.com/shopspring/decimal"

// Override máquina de estados do preço automático/manual, mantida pelo
// chamador (a UI ou o handler). Dois estados:
//
//	auto:   toda mudança de entrada recalcula e permanece em auto;
//	manual: o valor digitado congela a mensalidade exibida até o vendedor
//	        alterar alguma entrada que alimenta o cálculo ou resetar.
//
// O zero value está em auto.
type Override struct {
	manual bool
	value  decimal.Decimal
}

// Set entra em modo manual com o valor informado (negativo vira zero).
func (o *Override) Set(v decimal.Decimal) {
	o.manual = true
	o.value = clampNonNegative(v)
}

// InputChanged registra mudança em qualquer entrada que alimenta o cálculo
// automático: volta para auto e descarta o valor manual.
func (o *Override) InputChanged() {
	o.manual = false
	o.value = decimal.Zero
}

// Reset volta explicitamente para auto.
func (o *Override) Reset() {
	o.InputChanged()
}

// Manual informa se há override ativo.
func (o *Override) Manual() bool {
	return o.manual
}

// Resolve devolve o preço a exibir: o manual congelado ou o calculado.
func (o *Override) Resolve(calculated decimal.Decimal) decimal.Decimal {
	if o.manual {
		return o.value
	}
	return calculated
}
