// Package brl formata valores monetários em Real brasileiro (pt-BR),
// ex.: "R$ 1.234,56". Mesma apresentação usada na proposta impressa.
package brl

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format formata um valor com símbolo e separadores pt-BR, sempre com 2 casas.
func Format(v decimal.Decimal) string {
	f, _ := v.Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f, number.Scale(2)))
}

// FormatInt formata um valor inteiro de moeda (sem casas decimais),
// ex.: "R$ 2.000". Usado em projeções onde os centavos não agregam.
func FormatInt(v decimal.Decimal) string {
	f, _ := v.Round(0).Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f, number.Scale(0)))
}
