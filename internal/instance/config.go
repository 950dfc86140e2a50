package instance

import (
	"errors"
	"fmt"
	"log"

	"github.com/cloudkeep/cloudkeep/internal/binding"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

const (
	depotPort    = "443"
	depotContext = "depot"

	storageClassReduced  = "rrs"
	storageClassStandard = "standard"

	notificationType = "EMAIL"
)

// Config is the payload pushed to a provisioned instance. It carries
// everything the instance's software stack needs to come up: where its
// storage application lives, which storage accounts back it and how it
// sends notifications.
type Config struct {
	Depot        DepotConfig
	Console      ConsoleConfig
	Notification NotificationConfig
}

// DepotConfig configures the instance's storage application.
type DepotConfig struct {
	Host            string
	Port            string
	Context         string
	StorageAccounts []StorageAccount
}

// StorageAccount is a resolved storage-provider account with its
// per-binding storage-class option.
type StorageAccount struct {
	ID           string
	Username     string
	Password     string
	ProviderType string
	Primary      bool
	StorageClass string
}

// ConsoleConfig points the instance's admin UI at the storage application
// and back at the management console.
type ConsoleConfig struct {
	DepotHost    string
	DepotPort    string
	DepotContext string
	Endpoint     string
}

// NotificationConfig carries the mail settings an instance notifies with.
type NotificationConfig struct {
	Type     string
	Username string
	Password string
	From     string
	Admins   []string
}

// NotificationSettings are the globally configured mail credentials handed
// to every instance.
type NotificationSettings struct {
	Username string
	Password string
	From     string
	Admins   []string
}

type configAccountsRepository interface {
	FindByID(id uint) (*model.Account, error)
}

type configBindingsRepository interface {
	FindByAccount(accountID uint) ([]model.StorageBinding, error)
}

// ConfigBuilder derives an instance's configuration from current account and
// storage-binding state. Build has no side effects and is safe to call
// repeatedly; it backs both initial provisioning and reinitialization.
type ConfigBuilder struct {
	accounts     configAccountsRepository
	bindings     configBindingsRepository
	providers    binding.ProviderClient
	notification NotificationSettings
	endpoint     string
}

func NewConfigBuilder(accounts configAccountsRepository, bindings configBindingsRepository, providers binding.ProviderClient, notification NotificationSettings, endpoint string) *ConfigBuilder {
	return &ConfigBuilder{
		accounts:     accounts,
		bindings:     bindings,
		providers:    providers,
		notification: notification,
		endpoint:     endpoint,
	}
}

// Build materializes the configuration for the given instance.
func (b *ConfigBuilder) Build(inst *model.Instance) (Config, error) {
	if _, err := b.accounts.FindByID(inst.AccountID); err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			log.Printf("instance %d references missing account %d\n", inst.ID, inst.AccountID)
			return Config{}, fmt.Errorf("instance %d references account %d: %w",
				inst.ID, inst.AccountID, ErrAccountNotFound)
		}
		return Config{}, err
	}

	bindings, err := b.bindings.FindByAccount(inst.AccountID)
	if err != nil {
		return Config{}, err
	}

	storageAccounts := make([]StorageAccount, 0, len(bindings))
	for _, bnd := range bindings {
		resolved, err := b.resolve(bnd)
		if err != nil {
			return Config{}, err
		}
		storageAccounts = append(storageAccounts, resolved)
	}

	return Config{
		Depot: DepotConfig{
			Host:            inst.HostName,
			Port:            depotPort,
			Context:         depotContext,
			StorageAccounts: storageAccounts,
		},
		Console: ConsoleConfig{
			DepotHost:    inst.HostName,
			DepotPort:    depotPort,
			DepotContext: depotContext,
			Endpoint:     b.endpoint,
		},
		Notification: NotificationConfig{
			Type:     notificationType,
			Username: b.notification.Username,
			Password: b.notification.Password,
			From:     b.notification.From,
			Admins:   b.notification.Admins,
		},
	}, nil
}

// resolve looks the binding's provider account up. A dangling reference
// becomes ErrProviderAccountNotAvailable; registry failures pass through
// so a transient outage is not mistaken for a missing account.
func (b *ConfigBuilder) resolve(bnd model.StorageBinding) (StorageAccount, error) {
	provider, err := b.providers.Lookup(bnd.ProviderAccountID)
	if errors.Is(err, binding.ErrUnknownProviderAccount) {
		return StorageAccount{}, fmt.Errorf("storage provider account %s does not exist: %w",
			bnd.ProviderAccountID, binding.ErrProviderAccountNotAvailable)
	}
	if err != nil {
		return StorageAccount{}, err
	}

	storageClass := storageClassStandard
	if provider.ReducedRedundancy {
		storageClass = storageClassReduced
	}

	return StorageAccount{
		ID:           bnd.ProviderAccountID,
		Username:     provider.Username,
		Password:     provider.Password,
		ProviderType: provider.ProviderType,
		Primary:      bnd.Primary,
		StorageClass: storageClass,
	}, nil
}
