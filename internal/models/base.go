package models

import (
	"time"
)

// BaseModel is embedded by every entity. Rows are hard-deleted, so there is
// no soft-delete column.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
