package model

import "time"

// StorageBinding associates an account with an external storage-provider
// account. Exactly one binding per account is primary whenever the account
// has any bindings at all; credentials and the storage-class option live in
// the external provider registry, referenced by ProviderAccountID.
type StorageBinding struct {
	ID                uint `gorm:"primarykey"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AccountID         uint   `gorm:"index; not null"`
	ProviderAccountID string `gorm:"not null"`
	ProviderType      string `gorm:"not null"`
	Primary           bool   `gorm:"not null; default:false"`
}
