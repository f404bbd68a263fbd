package services

import (
	"github.com/shopspring/decimal"
)

// DefaultSessionPrice is charged when a session was recorded without a price.
// It is substituted at read and aggregation time only, never written back.
var DefaultSessionPrice = decimal.NewFromInt(150)

type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// EffectivePrice resolves the amount a session bills at: its stored price, or
// the standard rate when none was recorded.
func (s *PricingService) EffectivePrice(price *decimal.Decimal) decimal.Decimal {
	if price == nil {
		return DefaultSessionPrice
	}
	return *price
}

// ApplyWelcomePack returns the price for a session that includes a welcome
// pack: the base price (zero when unset) plus the configured fee. The fee is
// folded into the stored price once; later fee changes do not reprice it.
func (s *PricingService) ApplyWelcomePack(
	base *decimal.Decimal,
	fee decimal.Decimal,
) decimal.Decimal {
	if base == nil {
		return fee
	}
	return base.Add(fee)
}
