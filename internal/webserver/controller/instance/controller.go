package instance

import (
	"context"

	"github.com/cloudkeep/cloudkeep/internal/instance"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

type instancesService interface {
	Create(ctx context.Context, accountID uint, version string) (*model.Instance, error)
	Stop(ctx context.Context, instanceID uint) error
	Restart(ctx context.Context, instanceID uint) error
	ReInitialize(ctx context.Context, instanceID uint) error
	ReInitializeUserRoles(ctx context.Context, instanceID uint) error
	Upgrade(ctx context.Context, accountID uint) (*model.Instance, error)
	ForAccount(accountID uint) (*model.Instance, error)
	SyncForAccount(ctx context.Context, accountID uint) ([]model.Instance, error)
}

type availabilityPoller interface {
	WaitUntilReady(ctx context.Context, accountID uint) (instance.WaitResult, error)
}

type Controller struct {
	instances instancesService
	poller    availabilityPoller
}

func NewController(instances instancesService, poller availabilityPoller) *Controller {
	return &Controller{
		instances: instances,
		poller:    poller,
	}
}
