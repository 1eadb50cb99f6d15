package models

// ParentKind discriminates which entity an image is attached to. The parent
// reference is polymorphic, so there is no foreign key across the union;
// existence and ownership are validated by the image service before every
// mutation, and a janitor sweeps rows orphaned by crashes.
type ParentKind string

const (
	KindItem      ParentKind = "item"
	KindContainer ParentKind = "container"
)

// Valid reports whether k is one of the two known parent kinds.
func (k ParentKind) Valid() bool {
	return k == KindItem || k == KindContainer
}

// MaxImagesPerParent caps attachments per (parent_kind, parent_id).
const MaxImagesPerParent = 5

// Image is attachment metadata; the bytes live in the external blob store
// under StoragePath. DisplayOrder 1 is the thumbnail. The composite unique
// index is the authoritative guard against slot races.
type Image struct {
	BaseModel
	OwnerID      uint       `gorm:"index;not null" json:"owner_id"`
	ParentKind   ParentKind `gorm:"type:varchar(16);not null;index:ix_images_parent,priority:1;uniqueIndex:ux_images_parent_slot,priority:1" json:"parent_kind"`
	ParentID     uint       `gorm:"not null;index:ix_images_parent,priority:2;uniqueIndex:ux_images_parent_slot,priority:2" json:"parent_id"`
	StoragePath  string     `gorm:"type:text;not null" json:"storage_path"`
	DisplayOrder int        `gorm:"not null;uniqueIndex:ux_images_parent_slot,priority:3" json:"display_order"`
}
