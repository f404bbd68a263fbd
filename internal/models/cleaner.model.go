package models

import (
	"gorm.io/gorm"
)

const (
	MaxCleanerNameLength = 100
	MaxPhoneLength       = 20
)

type Cleaner struct {
	BaseUUIDModel
	Name  string  `gorm:"type:text;not null;index:idx_cleaners_name" json:"name"`
	Phone *string `gorm:"type:text"                                  json:"phone,omitempty"`
	Email *string `gorm:"type:text"                                  json:"email,omitempty"`
}

func (c *Cleaner) BeforeCreate(tx *gorm.DB) (err error) {
	c.ensureID()
	if c.Name == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}
