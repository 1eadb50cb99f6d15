package models

// Item is a tracked object stored in exactly one Container and classified by
// exactly one Category. The RESTRICT constraints are the storage-level
// backstop for the dependency check on container/category deletion.
type Item struct {
	BaseModel
	OwnerID     uint       `gorm:"index;not null" json:"owner_id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CategoryID  uint       `gorm:"index;not null" json:"category_id"`
	Category    *Category  `gorm:"constraint:OnDelete:RESTRICT" json:"category,omitempty"`
	ContainerID uint       `gorm:"index;not null" json:"container_id"`
	Container   *Container `gorm:"constraint:OnDelete:RESTRICT" json:"container,omitempty"`
	IsIn        bool       `gorm:"not null" json:"is_in"`
	Quantity    *int       `json:"quantity,omitempty"`
}
