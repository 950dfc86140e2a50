package binding

import (
	"github.com/cloudkeep/cloudkeep/internal/model"
)

type bindingsRegistry interface {
	Add(accountID uint, providerType string) (uint, error)
	Remove(accountID, bindingID uint) error
	Primary(accountID uint) (*model.StorageBinding, error)
	Secondaries(accountID uint) ([]model.StorageBinding, error)
}

type Controller struct {
	bindings bindingsRegistry
}

func NewController(bindings bindingsRegistry) *Controller {
	return &Controller{bindings: bindings}
}
