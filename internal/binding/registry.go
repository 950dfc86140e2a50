package binding

import (
	"errors"
	"fmt"

	"github.com/cloudkeep/cloudkeep/internal/model"
)

var (
	// ErrProviderAccountNotAvailable signals a missing or already-removed
	// storage-provider binding. Removal is not idempotent; callers should
	// check then act, or tolerate this error.
	ErrProviderAccountNotAvailable = errors.New("storage provider account not available")

	// ErrUnknownProviderAccount is returned by ProviderClient
	// implementations when an account id has no record in the external
	// registry. Transient registry failures are never mapped to it.
	ErrUnknownProviderAccount = errors.New("unknown storage provider account")
)

// ProviderAccount is the external registry's record for a provisioned
// storage account.
type ProviderAccount struct {
	ID                string
	Username          string
	Password          string
	ProviderType      string
	ReducedRedundancy bool
}

// ProviderClient talks to the external storage-account registry. Calls are
// single-shot and non-transactional; there is no rollback coordination with
// the local binding rows. Lookup and DeleteAccount report an id without a
// registry record as ErrUnknownProviderAccount; any other error is a
// registry failure and passes through untranslated.
type ProviderClient interface {
	CreateAccount(providerType string) (string, error)
	DeleteAccount(id string) error
	Lookup(id string) (ProviderAccount, error)
}

type bindingsRepository interface {
	Create(binding *model.StorageBinding) error
	FindByID(id uint) (*model.StorageBinding, error)
	FindByAccount(accountID uint) ([]model.StorageBinding, error)
	Delete(id uint) error
}

// Registry tracks the storage-provider bindings of each account and keeps
// the one-primary invariant: the first binding of an account becomes
// primary, every later one is secondary.
type Registry struct {
	bindings bindingsRepository
	client   ProviderClient
}

func NewRegistry(bindings bindingsRepository, client ProviderClient) *Registry {
	return &Registry{bindings: bindings, client: client}
}

// Add allocates a storage account at the external provider registry and
// persists a binding to it, returning the new binding id.
func (r *Registry) Add(accountID uint, providerType string) (uint, error) {
	existing, err := r.bindings.FindByAccount(accountID)
	if err != nil {
		return 0, err
	}

	providerAccountID, err := r.client.CreateAccount(providerType)
	if err != nil {
		return 0, err
	}

	binding := &model.StorageBinding{
		AccountID:         accountID,
		ProviderAccountID: providerAccountID,
		ProviderType:      providerType,
		Primary:           len(existing) == 0,
	}
	if err := r.bindings.Create(binding); err != nil {
		return 0, err
	}
	return binding.ID, nil
}

// Remove deletes a secondary binding and its provider account. Unknown ids,
// ids owned by another account and repeated removals all report
// ErrProviderAccountNotAvailable. The primary binding cannot be removed.
func (r *Registry) Remove(accountID, bindingID uint) error {
	binding, err := r.bindings.FindByID(bindingID)
	if errors.Is(err, model.ErrBindingNotFound) {
		return fmt.Errorf("storage binding %d: %w", bindingID, ErrProviderAccountNotAvailable)
	}
	if err != nil {
		return err
	}
	if binding.AccountID != accountID || binding.Primary {
		return fmt.Errorf("storage binding %d: %w", bindingID, ErrProviderAccountNotAvailable)
	}

	if err := r.bindings.Delete(bindingID); err != nil {
		if errors.Is(err, model.ErrBindingNotFound) {
			return fmt.Errorf("storage binding %d: %w", bindingID, ErrProviderAccountNotAvailable)
		}
		return err
	}
	return r.client.DeleteAccount(binding.ProviderAccountID)
}

// Primary returns the account's primary binding. An account without any
// bindings cannot feed an instance configuration, so the empty case is an
// error rather than a nil result.
func (r *Registry) Primary(accountID uint) (*model.StorageBinding, error) {
	bindings, err := r.bindings.FindByAccount(accountID)
	if err != nil {
		return nil, err
	}
	for i := range bindings {
		if bindings[i].Primary {
			return &bindings[i], nil
		}
	}
	return nil, fmt.Errorf("account %d has no storage bindings: %w", accountID, ErrProviderAccountNotAvailable)
}

// Secondaries returns the account's non-primary bindings, possibly none.
func (r *Registry) Secondaries(accountID uint) ([]model.StorageBinding, error) {
	bindings, err := r.bindings.FindByAccount(accountID)
	if err != nil {
		return nil, err
	}

	secondaries := make([]model.StorageBinding, 0, len(bindings))
	for _, b := range bindings {
		if !b.Primary {
			secondaries = append(secondaries, b)
		}
	}
	return secondaries, nil
}
