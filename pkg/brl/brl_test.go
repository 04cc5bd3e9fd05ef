package brl_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/crmpartner/proposal-api/pkg/brl"
)

func TestFormat_SeparadoresPtBR(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", brl.Format(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "R$ 200,00", brl.Format(decimal.NewFromInt(200)))
	assert.Equal(t, "R$ 0,00", brl.Format(decimal.Zero))
}

func TestFormatInt_SemCentavos(t *testing.T) {
	assert.Equal(t, "R$ 2.000", brl.FormatInt(decimal.NewFromInt(2000)))
	assert.Equal(t, "R$ 12.000", brl.FormatInt(decimal.NewFromFloat(12000.4)))
}
