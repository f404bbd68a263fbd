package services

import (
	"rightstay/internal/database"
)

type Service struct {
	Transaction *TransactionService
	Pricing     *PricingService
	Analytics   *AnalyticsService
}

func New(db database.DB) Service {
	return Service{
		Transaction: NewTransactionService(db),
		Pricing:     NewPricingService(),
		Analytics:   NewAnalyticsService(),
	}
}
