package models

// Container is a flat physical storage location. Containers do not nest.
type Container struct {
	BaseModel
	OwnerID     uint   `gorm:"index;not null" json:"owner_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}
