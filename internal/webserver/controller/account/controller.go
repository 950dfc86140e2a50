package account

import (
	"github.com/cloudkeep/cloudkeep/internal/account"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

type accountsService interface {
	Create(info account.CreationInfo, owner *model.User) (*model.Account, error)
	Get(id uint) (*model.Account, error)
	Activate(id uint) (*model.Account, error)
	Deactivate(id uint) (*model.Account, error)
	Cancel(id uint, requestingUser *model.User) error
}

type Controller struct {
	accounts accountsService
}

func NewController(accounts accountsService) *Controller {
	return &Controller{accounts: accounts}
}
