package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func TestEffectivePrice(t *testing.T) {
	pricing := NewPricingService()

	tests := []struct {
		name     string
		price    *decimal.Decimal
		expected string
	}{
		{name: "stored price wins", price: dec("200"), expected: "200"},
		{name: "nil price falls back to standard rate", price: nil, expected: "150"},
		{name: "zero price is honored, not defaulted", price: dec("0"), expected: "0"},
		{name: "fractional price", price: dec("149.50"), expected: "149.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.EffectivePrice(tt.price)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestApplyWelcomePack(t *testing.T) {
	pricing := NewPricingService()

	tests := []struct {
		name     string
		base     *decimal.Decimal
		fee      string
		expected string
	}{
		{name: "base plus fee", base: dec("180"), fee: "50", expected: "230"},
		{name: "nil base treated as zero", base: nil, fee: "50", expected: "50"},
		{name: "zero fee leaves base untouched", base: dec("180"), fee: "0", expected: "180"},
		{name: "nil base and zero fee", base: nil, fee: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ApplyWelcomePack(tt.base, decimal.RequireFromString(tt.fee))
			assert.Equal(t, tt.expected, got.String())
		})
	}
}
