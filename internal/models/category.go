package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category classifies items. Names are unique per owner under
// case-insensitive comparison; NameKey holds the canonical (trimmed,
// lower-cased) form and carries the unique index, so the database is the
// authoritative guard regardless of collation.
type Category struct {
	BaseModel
	OwnerID uint   `gorm:"not null;uniqueIndex:ux_categories_owner_name_key,priority:1" json:"owner_id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	NameKey string `gorm:"type:varchar(255);not null;uniqueIndex:ux_categories_owner_name_key,priority:2" json:"-"`
}

// BeforeSave keeps NameKey in sync with Name on every write path.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.NameKey = strings.ToLower(strings.TrimSpace(c.Name))
	return nil
}
