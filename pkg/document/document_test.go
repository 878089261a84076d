package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"masked cpf", "330.897.318-94", "33089731894"},
		{"masked phone", "(48) 99999-1234", "48999991234"},
		{"already bare", "33089731894", "33089731894"},
		{"letters only", "abc", ""},
		{"empty", "", ""},
		{"mixed", "a1b2c3", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Digits(tt.input))
		})
	}
}

func TestNormalizeCPF(t *testing.T) {
	t.Run("accepts masked 11 digit cpf", func(t *testing.T) {
		cpf, ok := NormalizeCPF("330.897.318-94")
		assert.True(t, ok)
		assert.Equal(t, "33089731894", cpf)
	})

	t.Run("accepts bare 11 digit cpf", func(t *testing.T) {
		cpf, ok := NormalizeCPF("33089731894")
		assert.True(t, ok)
		assert.Equal(t, "33089731894", cpf)
	})

	t.Run("rejects short cpf", func(t *testing.T) {
		_, ok := NormalizeCPF("123.456.789")
		assert.False(t, ok)
	})

	t.Run("rejects long cpf", func(t *testing.T) {
		_, ok := NormalizeCPF("123456789012")
		assert.False(t, ok)
	})

	t.Run("returns stripped digits even when invalid", func(t *testing.T) {
		cpf, ok := NormalizeCPF("12.34")
		assert.False(t, ok)
		assert.Equal(t, "1234", cpf)
	})
}
