// Package document normalizes and validates Brazilian identity and contact
// numbers. Values are stored digits-only; any mask characters the operator
// typed (dots, dashes, parentheses, spaces) are stripped before validation.
package document

import "strings"

// cpfLength is the exact digit count of a CPF document number
const cpfLength = 11

// Digits strips every non-digit rune from s
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCPF strips formatting from a CPF and reports whether exactly 11
// digits remain. The returned value is the digits-only form regardless of
// validity.
func NormalizeCPF(s string) (string, bool) {
	digits := Digits(s)
	return digits, len(digits) == cpfLength
}
