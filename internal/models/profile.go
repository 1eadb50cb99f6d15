package models

// Profile is the tenant row. It is created lazily the first time an
// authenticated subject reaches the service; Subject is the opaque
// identifier handed over by the identity provider.
type Profile struct {
	BaseModel
	Subject string `gorm:"type:varchar(255);not null;uniqueIndex" json:"subject"`
}
