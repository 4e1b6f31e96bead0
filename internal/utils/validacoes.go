package utils

import (
	"regexp"
	"strings"
	"time"
)

var naoDigitos = regexp.MustCompile(`\D`)

// SomenteDigitos strips everything that is not 0-9.
func SomenteDigitos(s string) string {
	return naoDigitos.ReplaceAllString(s, "")
}

// ValidarCPF checks the two mod-11 check digits of a CPF. Formatting
// characters are ignored; strings with all eleven digits equal are invalid
// even though their checksum passes.
func ValidarCPF(cpf string) bool {
	digits := SomenteDigitos(cpf)
	if len(digits) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	d := make([]int, 11)
	for i := 0; i < 11; i++ {
		d[i] = int(digits[i] - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += d[i] * (10 - i)
	}
	check := (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	if check != d[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += d[i] * (11 - i)
	}
	check = (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	return check == d[10]
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidarEmail applies the same lenient shape check the intake form uses.
func ValidarEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// ValidarTelefone accepts Brazilian numbers with 10 (landline) or 11
// (mobile) digits.
func ValidarTelefone(telefone string) bool {
	n := len(SomenteDigitos(telefone))
	return n == 10 || n == 11
}

// ValidarDataNascimento parses YYYY-MM-DD and rejects future dates and
// ages above 130.
func ValidarDataNascimento(data string) bool {
	t, err := time.Parse("2006-01-02", data)
	if err != nil {
		return false
	}
	now := time.Now()
	if t.After(now) {
		return false
	}
	return CalcularIdade(t, now) <= 130
}

// CalcularIdade computes calendar age, decrementing when the birthday has
// not happened yet this year.
func CalcularIdade(nascimento, hoje time.Time) int {
	idade := hoje.Year() - nascimento.Year()
	if hoje.Month() < nascimento.Month() ||
		(hoje.Month() == nascimento.Month() && hoje.Day() < nascimento.Day()) {
		idade--
	}
	if idade < 0 {
		return 0
	}
	return idade
}
