package infrastructure

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cloudkeep/cloudkeep/internal/binding"
)

// LocalProviderRegistry is a development stand-in for the external
// storage-account registry. Accounts live in memory only.
type LocalProviderRegistry struct {
	mu       sync.Mutex
	accounts map[string]binding.ProviderAccount
}

func NewLocalProviderRegistry() *LocalProviderRegistry {
	return &LocalProviderRegistry{
		accounts: map[string]binding.ProviderAccount{},
	}
}

func (l *LocalProviderRegistry) CreateAccount(providerType string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := uuid.NewString()
	l.accounts[id] = binding.ProviderAccount{
		ID:           id,
		Username:     "user-" + id[:8],
		Password:     uuid.NewString(),
		ProviderType: providerType,
	}
	return id, nil
}

func (l *LocalProviderRegistry) DeleteAccount(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[id]; !ok {
		return fmt.Errorf("storage provider account %s: %w", id, binding.ErrUnknownProviderAccount)
	}
	delete(l.accounts, id)
	return nil
}

func (l *LocalProviderRegistry) Lookup(id string) (binding.ProviderAccount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		return binding.ProviderAccount{}, fmt.Errorf("storage provider account %s: %w", id, binding.ErrUnknownProviderAccount)
	}
	return account, nil
}
