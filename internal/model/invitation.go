package model

import (
	"fmt"
	"time"
)

// Invitation is a time-limited, single-use token granting an email address
// membership of an account. It is deleted on redemption or explicit removal;
// expiration is enforced only at redemption time.
type Invitation struct {
	ID             uint `gorm:"primarykey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AccountID      uint   `gorm:"index; not null"`
	UserEmail      string `gorm:"not null"`
	ExpirationDate time.Time
	RedemptionCode string `gorm:"uniqueIndex; not null"`
	Counter        uint   `gorm:"not null; default:0"`
}

// Expired reports whether the invitation can no longer be redeemed at the
// given moment. Redemption is valid strictly before the expiration date.
func (i Invitation) Expired(now time.Time) bool {
	return !now.Before(i.ExpirationDate)
}

// RedemptionURL builds the link embedded in the invitation email.
func (i Invitation) RedemptionURL(endpoint string) string {
	return fmt.Sprintf("%s/users/redeem/%s", endpoint, i.RedemptionCode)
}

// Subject returns the fixed subject line of the invitation email.
func (i Invitation) Subject() string {
	return "CloudKeep Account Invitation"
}

// Body composes the plain-text invitation email embedding the redemption URL.
func (i Invitation) Body(endpoint string) string {
	return "You are being invited as a member of a CloudKeep account.\n" +
		"Please follow the link to join.\n" +
		i.RedemptionURL(endpoint) + "\n\n" +
		"CloudKeep Admin"
}
