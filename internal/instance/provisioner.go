package instance

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/exp/slices"

	"github.com/cloudkeep/cloudkeep/internal/model"
)

type instancesRepository interface {
	Create(instance *model.Instance) error
	FindByID(id uint) (*model.Instance, error)
	FindByAccount(accountID uint) ([]model.Instance, error)
	Save(instance *model.Instance) error
	Delete(id uint) error
}

type accountsRepository interface {
	FindByID(id uint) (*model.Account, error)
}

type membershipsRepository interface {
	FindByAccount(accountID uint) ([]model.AccountUser, error)
}

type usersRepository interface {
	FindByID(id uint) (*model.User, error)
}

type configBuilder interface {
	Build(instance *model.Instance) (Config, error)
}

// Service drives the compute-instance lifecycle: none -> creating ->
// initializing -> running, running -> restarting -> running, and
// running|initializing -> stopping -> none. An upgrade is a stop followed
// by a create at the latest catalog version, not a distinct state.
type Service struct {
	instances   instancesRepository
	accounts    accountsRepository
	memberships membershipsRepository
	users       usersRepository
	backend     ComputeBackend
	catalog     VersionCatalog
	builder     configBuilder
}

func NewService(instances instancesRepository, accounts accountsRepository, memberships membershipsRepository, users usersRepository, backend ComputeBackend, catalog VersionCatalog, builder configBuilder) *Service {
	return &Service{
		instances:   instances,
		accounts:    accounts,
		memberships: memberships,
		users:       users,
		backend:     backend,
		catalog:     catalog,
		builder:     builder,
	}
}

// Create allocates provider resources for the account and records the new
// instance in creating state. The instance advances to initializing and
// running on its own, observed through SyncForAccount. The one-instance
// invariant is checked before the external call and backed by the unique
// index on the instance row: when concurrent creates race past the check,
// one insert wins and the losers release their provider resources and
// report ErrNotAvailable.
func (s *Service) Create(ctx context.Context, accountID uint, version string) (*model.Instance, error) {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		return nil, err
	}

	supported, err := s.catalog.Supported()
	if err != nil {
		return nil, err
	}
	if !slices.Contains(supported, version) {
		return nil, fmt.Errorf("version %q: %w", version, ErrVersionNotSupported)
	}

	existing, err := s.instances.FindByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("account %d already has an instance: %w", accountID, ErrNotAvailable)
	}

	provided, err := s.backend.Create(ctx, account.Subdomain, version)
	if err != nil {
		return nil, err
	}

	instance := &model.Instance{
		AccountID:          accountID,
		HostName:           provided.HostName,
		ProviderInstanceID: provided.ID,
		Version:            version,
		State:              model.InstanceCreating,
	}
	if err := s.instances.Create(instance); err != nil {
		if errors.Is(err, model.ErrDuplicateInstance) {
			if stopErr := s.backend.Stop(ctx, provided.ID); stopErr != nil {
				log.Printf("error releasing provider instance %s after losing create race: %s\n", provided.ID, stopErr)
			}
			return nil, fmt.Errorf("account %d already has an instance: %w", accountID, ErrNotAvailable)
		}
		return nil, err
	}
	return instance, nil
}

// Stop issues the external stop call and logically destroys the instance.
// It does not block for the provider to finish tearing the resource down.
func (s *Service) Stop(ctx context.Context, instanceID uint) error {
	instance, err := s.get(instanceID)
	if err != nil {
		return err
	}
	if !instance.Stoppable() {
		return fmt.Errorf("instance %d is %s: %w", instanceID, instance.State, ErrNotAvailable)
	}

	if err := s.backend.Stop(ctx, instance.ProviderInstanceID); err != nil {
		return err
	}
	return s.instances.Delete(instance.ID)
}

// Restart issues the external restart call. The instance loses its
// initialized flag and is reconfigured once it reports running again.
func (s *Service) Restart(ctx context.Context, instanceID uint) error {
	instance, err := s.get(instanceID)
	if err != nil {
		return err
	}
	if !instance.Restartable() {
		return fmt.Errorf("instance %d is %s: %w", instanceID, instance.State, ErrNotAvailable)
	}

	if err := s.backend.Restart(ctx, instance.ProviderInstanceID); err != nil {
		return err
	}
	instance.State = model.InstanceRestarting
	instance.Initialized = false
	return s.instances.Save(instance)
}

// ReInitialize re-pushes the full configuration to a provisioned instance.
// Idempotent; failures are reported, never retried here.
func (s *Service) ReInitialize(ctx context.Context, instanceID uint) error {
	instance, err := s.get(instanceID)
	if err != nil {
		return err
	}

	cfg, err := s.builder.Build(instance)
	if err != nil {
		return err
	}
	return s.backend.Initialize(ctx, instance.HostName, cfg)
}

// ReInitializeUserRoles re-pushes only the user/role subset.
func (s *Service) ReInitializeUserRoles(ctx context.Context, instanceID uint) error {
	instance, err := s.get(instanceID)
	if err != nil {
		return err
	}

	roles, err := s.userRoles(instance.AccountID)
	if err != nil {
		return err
	}
	return s.backend.InitializeUserRoles(ctx, instance.HostName, roles)
}

// Upgrade stops the account's instance and creates a fresh one at the
// latest catalog version.
func (s *Service) Upgrade(ctx context.Context, accountID uint) (*model.Instance, error) {
	current, err := s.ForAccount(accountID)
	if err != nil {
		return nil, err
	}

	latest, err := s.catalog.Latest()
	if err != nil {
		return nil, err
	}

	if err := s.Stop(ctx, current.ID); err != nil {
		return nil, err
	}
	return s.Create(ctx, accountID, latest)
}

// ForAccount returns the account's single live instance. Zero instances and
// more than one both surface ErrNotAvailable; the latter is an invariant
// violation and is never resolved by silently picking one.
func (s *Service) ForAccount(accountID uint) (*model.Instance, error) {
	instances, err := s.instances.FindByAccount(accountID)
	if err != nil {
		return nil, err
	}
	switch len(instances) {
	case 0:
		return nil, fmt.Errorf("account %d has no instance: %w", accountID, ErrNotAvailable)
	case 1:
		return &instances[0], nil
	}
	log.Printf("account %d owns %d instances, invariant violated\n", accountID, len(instances))
	return nil, fmt.Errorf("account %d owns %d instances: %w", accountID, len(instances), ErrNotAvailable)
}

// SyncForAccount refreshes the account's instances from the compute
// backend's view. An instance first observed running gets its configuration
// and user roles pushed and its initialized flag set. An unknown account
// fails fast with model.ErrAccountNotFound so waiters never burn their
// deadline on it; an account without instances is a normal empty result.
// More than one stored instance is an invariant violation and fails fast.
func (s *Service) SyncForAccount(ctx context.Context, accountID uint) ([]model.Instance, error) {
	if _, err := s.accounts.FindByID(accountID); err != nil {
		return nil, err
	}

	instances, err := s.instances.FindByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if len(instances) > 1 {
		log.Printf("account %d owns %d instances, invariant violated\n", accountID, len(instances))
		return nil, fmt.Errorf("account %d owns %d instances: %w", accountID, len(instances), ErrNotAvailable)
	}

	for i := range instances {
		if err := s.sync(ctx, &instances[i]); err != nil {
			return nil, err
		}
	}
	return instances, nil
}

func (s *Service) sync(ctx context.Context, instance *model.Instance) error {
	state, err := s.backend.Status(ctx, instance.ProviderInstanceID)
	if err != nil {
		return err
	}

	changed := state != instance.State
	instance.State = state

	if state == model.InstanceRunning && !instance.Initialized {
		if err := s.initialize(ctx, instance); err != nil {
			return err
		}
		changed = true
	}

	if changed {
		return s.instances.Save(instance)
	}
	return nil
}

func (s *Service) initialize(ctx context.Context, instance *model.Instance) error {
	cfg, err := s.builder.Build(instance)
	if err != nil {
		return err
	}
	if err := s.backend.Initialize(ctx, instance.HostName, cfg); err != nil {
		return err
	}

	roles, err := s.userRoles(instance.AccountID)
	if err != nil {
		return err
	}
	if err := s.backend.InitializeUserRoles(ctx, instance.HostName, roles); err != nil {
		return err
	}

	instance.Initialized = true
	return nil
}

func (s *Service) userRoles(accountID uint) ([]UserRole, error) {
	memberships, err := s.memberships.FindByAccount(accountID)
	if err != nil {
		return nil, err
	}

	roles := make([]UserRole, 0, len(memberships))
	for _, m := range memberships {
		user, err := s.users.FindByID(m.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			log.Printf("membership %d references missing user %d\n", m.ID, m.UserID)
			continue
		}
		roles = append(roles, UserRole{Email: user.Email, Role: m.Role})
	}
	return roles, nil
}

func (s *Service) get(instanceID uint) (*model.Instance, error) {
	instance, err := s.instances.FindByID(instanceID)
	if errors.Is(err, model.ErrInstanceNotFound) {
		return nil, fmt.Errorf("instance %d: %w", instanceID, ErrNotAvailable)
	}
	if err != nil {
		return nil, err
	}
	return instance, nil
}
