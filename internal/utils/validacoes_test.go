package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidarCPF(t *testing.T) {
	valid := []string{
		"52998224725",
		"529.982.247-25",
		"11144477735",
	}
	for _, cpf := range valid {
		assert.True(t, ValidarCPF(cpf), cpf)
	}

	invalid := []string{
		"52998224724",    // wrong second check digit
		"52998224735",    // wrong first check digit
		"11111111111",    // all digits equal, checksum passes anyway
		"00000000000",    // all zeros
		"5299822472",     // too short
		"529982247250",   // too long
		"",               // empty
		"abcdefghijk",    // no digits
		"529.982.247-2x", // ten digits after cleanup
	}
	for _, cpf := range invalid {
		assert.False(t, ValidarCPF(cpf), cpf)
	}
}

func TestSomenteDigitos(t *testing.T) {
	assert.Equal(t, "11987654321", SomenteDigitos("(11) 98765-4321"))
	assert.Equal(t, "", SomenteDigitos("abc-"))
	assert.Equal(t, "01310100", SomenteDigitos("01310-100"))
}

func TestValidarTelefone(t *testing.T) {
	assert.True(t, ValidarTelefone("1133334444"))
	assert.True(t, ValidarTelefone("(11) 98765-4321"))
	assert.False(t, ValidarTelefone("123456789"))
	assert.False(t, ValidarTelefone("123456789012"))
	assert.False(t, ValidarTelefone(""))
}

func TestValidarDataNascimento(t *testing.T) {
	assert.True(t, ValidarDataNascimento("1990-05-10"))
	assert.False(t, ValidarDataNascimento("10/05/1990"))
	assert.False(t, ValidarDataNascimento("1990-13-01"))
	assert.False(t, ValidarDataNascimento(""))

	futuro := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	assert.False(t, ValidarDataNascimento(futuro))

	muitoVelho := time.Now().AddDate(-131, 0, 0).Format("2006-01-02")
	assert.False(t, ValidarDataNascimento(muitoVelho))
}

func TestCalcularIdade(t *testing.T) {
	hoje := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	// Birthday already passed this year.
	assert.Equal(t, 30, CalcularIdade(time.Date(1996, 3, 15, 0, 0, 0, 0, time.UTC), hoje))

	// Birthday is today.
	assert.Equal(t, 30, CalcularIdade(time.Date(1996, 8, 31, 0, 0, 0, 0, time.UTC), hoje))

	// Birthday still ahead this year.
	assert.Equal(t, 29, CalcularIdade(time.Date(1996, 9, 1, 0, 0, 0, 0, time.UTC), hoje))
	assert.Equal(t, 29, CalcularIdade(time.Date(1996, 12, 25, 0, 0, 0, 0, time.UTC), hoje))

	// Newborn.
	assert.Equal(t, 0, CalcularIdade(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), hoje))
}

func TestValidarEmail(t *testing.T) {
	assert.True(t, ValidarEmail("cliente@dominio.com.br"))
	assert.True(t, ValidarEmail("  cliente@dominio.com  "))
	assert.False(t, ValidarEmail("cliente@dominio"))
	assert.False(t, ValidarEmail("cliente dominio.com"))
	assert.False(t, ValidarEmail(""))
}
