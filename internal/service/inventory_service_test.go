package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextItemCode(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lastCode string
		expected string
	}{
		{"first code ever", "", "00001-26"},
		{"increments numeric prefix", "00041-26", "00042-26"},
		{"keeps counting across years", "00107-25", "00108-26"},
		{"rolls past five digit padding", "00009-26", "00010-26"},
		{"unparseable prefix restarts sequence", "garbage", "00001-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextItemCode(tt.lastCode, now))
		})
	}
}

func TestNextItemCodeYearSuffix(t *testing.T) {
	code := NextItemCode("00001-25", time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "00002-27", code)
}
