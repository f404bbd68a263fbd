package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingWelcomePackFee holds the process-wide welcome-pack fee. Changing it
// affects only future pricing; stored session prices are never recomputed.
const SettingWelcomePackFee = "welcome_pack_fee"

type Setting struct {
	Key       string         `gorm:"type:text;primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"not null"             json:"value"`
	CreatedAt time.Time      `gorm:"autoCreateTime"       json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"       json:"updated_at"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) (err error) {
	if s.Key == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}
