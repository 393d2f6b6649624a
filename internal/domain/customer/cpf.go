package customer

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrNameInvalid = errors.New("name invalid")
	ErrCPFInvalid  = errors.New("cpf invalid")
)

// NormalizeCPF strips punctuation and whitespace, keeping only digits
func NormalizeCPF(cpf string) string {
	var b strings.Builder

	for _, r := range cpf {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ValidCPF checks the two CPF check digits. An empty CPF is allowed
// since customers may register without one.
func ValidCPF(cpf string) bool {
	if cpf == "" {
		return true
	}

	cleaned := strings.NewReplacer(".", "", "-", "", " ", "").Replace(cpf)

	if len(cleaned) != 11 {
		return false
	}

	digits := make([]int, 11)
	same := true

	for i, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			same = false
		}
	}

	if same {
		return false
	}

	return checkDigit(digits[:9]) == digits[9] && checkDigit(digits[:10]) == digits[10]
}

func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1

	for _, d := range digits {
		sum += d * weight
		weight--
	}

	rest := (sum * 10) % 11

	if rest == 10 {
		return 0
	}

	return rest
}

// Validate checks the fields required to register a customer
func Validate(name, cpf string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameInvalid
	}

	if !ValidCPF(cpf) {
		return ErrCPFInvalid
	}

	return nil
}
