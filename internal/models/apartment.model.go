package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxApartmentNumberLength = 50
	MaxOwnerNameLength       = 100
	MaxAddressLength         = 200
)

type Apartment struct {
	BaseUUIDModel
	// Uniqueness is enforced case-insensitively by a partial index over live
	// rows (CreateIndexes), so a soft-deleted apartment frees its number.
	ApartmentNumber string           `gorm:"type:text;not null;index:idx_apartments_number" json:"apartment_number"`
	OwnerName       string           `gorm:"type:text;not null"                             json:"owner_name"`
	OwnerEmail      *string          `gorm:"type:text"                                      json:"owner_email,omitempty"`
	Address         *string          `gorm:"type:text"                                      json:"address,omitempty"`
	CleanerPayout   *decimal.Decimal `gorm:"type:decimal(10,2)"                             json:"cleaner_payout,omitempty"`
}

func (a *Apartment) BeforeCreate(tx *gorm.DB) (err error) {
	a.ensureID()
	return a.validate()
}

func (a *Apartment) validate() error {
	if a.ApartmentNumber == "" {
		return gorm.ErrInvalidValue
	}
	if a.OwnerName == "" {
		return gorm.ErrInvalidValue
	}
	if a.CleanerPayout != nil && a.CleanerPayout.IsNegative() {
		return gorm.ErrInvalidValue
	}
	return nil
}

// PayoutOrZero is the amount owed to whichever cleaner services this
// apartment. Read live at aggregation time, never snapshotted per session.
func (a *Apartment) PayoutOrZero() decimal.Decimal {
	if a.CleanerPayout == nil {
		return decimal.Zero
	}
	return *a.CleanerPayout
}
