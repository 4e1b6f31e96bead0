package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FormatarCPF renders 11 digits as 000.000.000-00; anything else is
// returned unchanged.
func FormatarCPF(cpf string) string {
	digits := SomenteDigitos(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}

// FormatarTelefone renders (00) 0000-0000 or (00) 00000-0000.
func FormatarTelefone(telefone string) string {
	digits := SomenteDigitos(telefone)
	switch len(digits) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:6], digits[6:10])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:7], digits[7:11])
	default:
		return telefone
	}
}

// FormatarCEP renders 8 digits as 00000-000.
func FormatarCEP(cep string) string {
	digits := SomenteDigitos(cep)
	if len(digits) != 8 {
		return cep
	}
	return fmt.Sprintf("%s-%s", digits[0:5], digits[5:8])
}

// FormatarMoeda renders a value in pt-BR currency style: R$ 1.234,56.
func FormatarMoeda(valor float64) string {
	neg := valor < 0
	if neg {
		valor = -valor
	}

	s := strconv.FormatFloat(valor, 'f', 2, 64)
	parts := strings.Split(s, ".")
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

var valorCleanRe = regexp.MustCompile(`[^0-9,.]`)

// ParseValorMonetario converts a pt-BR monetary string to a float. It
// keeps only digits, dots and commas, drops thousands dots and swaps the
// decimal comma: "R$ 1.234,56" becomes 1234.56.
func ParseValorMonetario(valor string) (float64, error) {
	cleaned := valorCleanRe.ReplaceAllString(valor, "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return 0, errors.New("valor monetário vazio")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, errors.New("valor monetário inválido")
	}
	return v, nil
}
