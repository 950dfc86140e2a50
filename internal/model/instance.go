package model

import "time"

const (
	InstanceCreating     = "creating"
	InstanceInitializing = "initializing"
	InstanceRunning      = "running"
	InstanceRestarting   = "restarting"
	InstanceStopping     = "stopping"
)

// Instance is a provisioned compute resource bound to exactly one account.
// The unique index on AccountID backs the at-most-one-instance invariant:
// when two creations race past the orchestrator's check, only one row can
// be stored.
type Instance struct {
	ID                 uint `gorm:"primarykey"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	AccountID          uint   `gorm:"uniqueIndex; not null"`
	HostName           string `gorm:"not null"`
	ProviderInstanceID string `gorm:"not null"`
	Version            string
	Initialized        bool   `gorm:"not null; default:false"`
	State              string `gorm:"not null; default:creating"`
}

// Stoppable reports whether a stop request is legal in the current state.
func (i Instance) Stoppable() bool {
	switch i.State {
	case InstanceCreating, InstanceInitializing, InstanceRunning, InstanceRestarting:
		return true
	}
	return false
}

// Restartable reports whether a restart request is legal in the current state.
func (i Instance) Restartable() bool {
	return i.State == InstanceRunning
}
