package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValorMonetario(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"1234,56", 1234.56},
		{"150", 150},
		{"R$ 0,99", 0.99},
		{"  R$ 10.000,00  ", 10000},
	}
	for _, tc := range cases {
		got, err := ParseValorMonetario(tc.in)
		assert.NoError(t, err, tc.in)
		assert.InDelta(t, tc.want, got, 0.001, tc.in)
	}
}

func TestParseValorMonetarioInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "R$", "1,2,3"} {
		_, err := ParseValorMonetario(in)
		assert.Error(t, err, in)
	}
}

func TestFormatarMoeda(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatarMoeda(1234.56))
	assert.Equal(t, "R$ 0,99", FormatarMoeda(0.99))
	assert.Equal(t, "R$ 1.000.000,00", FormatarMoeda(1000000))
	assert.Equal(t, "-R$ 12,50", FormatarMoeda(-12.5))
}

func TestFormatarCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatarCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", FormatarCPF("529.982.247-25"))
	assert.Equal(t, "123", FormatarCPF("123"))
}

func TestFormatarTelefone(t *testing.T) {
	assert.Equal(t, "(11) 3333-4444", FormatarTelefone("1133334444"))
	assert.Equal(t, "(11) 98765-4321", FormatarTelefone("11987654321"))
	assert.Equal(t, "123", FormatarTelefone("123"))
}

func TestFormatarCEP(t *testing.T) {
	assert.Equal(t, "01310-100", FormatarCEP("01310100"))
	assert.Equal(t, "01310-100", FormatarCEP("01310-100"))
	assert.Equal(t, "123", FormatarCEP("123"))
}
