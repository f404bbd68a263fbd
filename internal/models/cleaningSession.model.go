package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxNotesLength = 500

	// CleaningDateLayout is the only accepted calendar-date form. Dates are
	// stored zero-padded so lexicographic comparison matches chronological order.
	CleaningDateLayout = "2006-01-02"
)

// CleaningSession is the normalized write model: foreign keys only, no
// resolved names. The unique (cleaner_id, cleaning_date) index is the storage
// backstop for the no-double-booking invariant; the application checks first.
type CleaningSession struct {
	BaseUUIDModel
	ApartmentID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_cleaning_sessions_apartment"      json:"apartment_id"`
	Apartment      *Apartment       `gorm:"foreignKey:ApartmentID"                                        json:"apartment,omitempty"`
	CleanerID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_cleaning_sessions_cleaner_date" json:"cleaner_id"`
	Cleaner        *Cleaner         `gorm:"foreignKey:CleanerID"                                          json:"cleaner,omitempty"`
	CleaningDate   string           `gorm:"type:text;not null;uniqueIndex:idx_cleaning_sessions_cleaner_date" json:"cleaning_date"`
	Notes          string           `gorm:"type:text"                                                     json:"notes,omitempty"`
	Price          *decimal.Decimal `gorm:"type:decimal(10,2)"                                            json:"price,omitempty"`
	WelcomePackFee *decimal.Decimal `gorm:"type:decimal(10,2)"                                            json:"welcome_pack_fee,omitempty"`
}

// BeforeCreate validates the full row. Updates go through map-based Updates
// calls where the hook receives no model value, so update validation lives in
// the controllers instead.
func (s *CleaningSession) BeforeCreate(tx *gorm.DB) (err error) {
	s.ensureID()
	return s.validate()
}

func (s *CleaningSession) validate() error {
	if s.ApartmentID == uuid.Nil || s.CleanerID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if _, err := time.Parse(CleaningDateLayout, s.CleaningDate); err != nil {
		return gorm.ErrInvalidValue
	}
	if s.Price != nil && s.Price.IsNegative() {
		return gorm.ErrInvalidValue
	}
	return nil
}

// CleaningSessionDetail is the read-side projection: one session joined with
// its apartment and cleaner. It is derived fresh at query time so renames
// propagate to historic sessions, and is never persisted.
type CleaningSessionDetail struct {
	ID             uuid.UUID        `json:"id"`
	ApartmentID    uuid.UUID        `json:"apartment_id"`
	CleanerID      uuid.UUID        `json:"cleaner_id"`
	CleaningDate   string           `json:"cleaning_date"`
	Notes          string           `json:"notes,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	WelcomePackFee *decimal.Decimal `json:"welcome_pack_fee,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	ApartmentNumber string  `json:"apartment_number"`
	OwnerName       string  `json:"owner_name"`
	OwnerEmail      *string `json:"owner_email,omitempty"`
	Address         *string `json:"address,omitempty"`
	CleanerName     string  `json:"cleaner_name"`
	CleanerPhone    *string `json:"cleaner_phone,omitempty"`
	CleanerEmail    *string `json:"cleaner_email,omitempty"`
}
