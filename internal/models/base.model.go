package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseUUIDModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"autoCreateTime"       json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"       json:"updated_at"`
	DeletedAt gorm.DeletedAt `                            json:"-"`
}

// ensureID assigns a v7 UUID before insert. IDs are generated here rather
// than by a column default so the same DDL works on Postgres and SQLite.
// Called from each model's BeforeCreate hook.
func (b *BaseUUIDModel) ensureID() {
	if b.ID == uuid.Nil {
		if id, err := uuid.NewV7(); err == nil {
			b.ID = id
		}
	}
}
