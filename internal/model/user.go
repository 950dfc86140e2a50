package model

import "time"

const (
	RoleRegular = iota + 1
	RoleAdmin
)

const (
	MembershipOwner  = "owner"
	MembershipMember = "member"
)

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Password  string
	Role      int
}

// AccountUser attaches a user to an account with an account-level role.
type AccountUser struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	AccountID uint   `gorm:"index; not null"`
	UserID    uint   `gorm:"index; not null"`
	Role      string `gorm:"not null; default:member"`
}
