package model

import "time"

const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusCancelled = "cancelled"
)

const (
	PlanStarter      = "STARTER"
	PlanProfessional = "PROFESSIONAL"
	PlanInstitution  = "INSTITUTION"
)

// Account is a billable subscriber entity. Cancelled accounts are never
// physically deleted, cancellation is a terminal status.
type Account struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Subdomain   string `gorm:"index; not null"`
	OrgName     string
	Department  string
	ServicePlan string
	Status      string `gorm:"not null; default:pending"`
	Counter     uint   `gorm:"not null; default:0"`
}

// Live reports whether the account still takes part in subdomain uniqueness
// and may own instances.
func (a Account) Live() bool {
	return a.Status != StatusCancelled
}
