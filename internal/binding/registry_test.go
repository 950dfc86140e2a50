package binding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudkeep/cloudkeep/internal/binding"
	"github.com/cloudkeep/cloudkeep/internal/infrastructure"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

func newRegistry(t *testing.T) (*binding.Registry, *infrastructure.LocalProviderRegistry) {
	t.Helper()

	db := infrastructure.Connect(":memory:")
	client := infrastructure.NewLocalProviderRegistry()
	return binding.NewRegistry(&model.BindingRepository{DB: db}, client), client
}

func TestAdd(t *testing.T) {
	registry, client := newRegistry(t)

	firstID, err := registry.Add(1, "s3")
	require.NoError(t, err)
	secondID, err := registry.Add(1, "glacier")
	require.NoError(t, err)

	t.Run("The first binding becomes primary", func(t *testing.T) {
		primary, err := registry.Primary(1)
		require.NoError(t, err)
		assert.Equal(t, firstID, primary.ID)
		assert.Equal(t, "s3", primary.ProviderType)

		secondaries, err := registry.Secondaries(1)
		require.NoError(t, err)
		require.Len(t, secondaries, 1)
		assert.Equal(t, secondID, secondaries[0].ID)
	})

	t.Run("Bindings reference live provider accounts", func(t *testing.T) {
		primary, err := registry.Primary(1)
		require.NoError(t, err)

		account, err := client.Lookup(primary.ProviderAccountID)
		require.NoError(t, err)
		assert.Equal(t, "s3", account.ProviderType)
		assert.NotEmpty(t, account.Username)
	})
}

func TestRemove(t *testing.T) {
	registry, client := newRegistry(t)

	primaryID, err := registry.Add(1, "s3")
	require.NoError(t, err)
	secondaryID, err := registry.Add(1, "glacier")
	require.NoError(t, err)

	t.Run("Removing a secondary deletes its provider account", func(t *testing.T) {
		secondaries, err := registry.Secondaries(1)
		require.NoError(t, err)
		providerAccountID := secondaries[0].ProviderAccountID

		require.NoError(t, registry.Remove(1, secondaryID))

		_, err = client.Lookup(providerAccountID)
		assert.Error(t, err)
	})

	t.Run("Removing the same binding twice fails", func(t *testing.T) {
		err := registry.Remove(1, secondaryID)
		assert.ErrorIs(t, err, binding.ErrProviderAccountNotAvailable)
	})

	t.Run("The primary binding cannot be removed", func(t *testing.T) {
		err := registry.Remove(1, primaryID)
		assert.ErrorIs(t, err, binding.ErrProviderAccountNotAvailable)
	})

	t.Run("A binding of another account cannot be removed", func(t *testing.T) {
		_, err := registry.Add(2, "s3")
		require.NoError(t, err)
		foreignSecondaryID, err := registry.Add(2, "glacier")
		require.NoError(t, err)

		assert.ErrorIs(t, registry.Remove(1, foreignSecondaryID), binding.ErrProviderAccountNotAvailable)
	})
}

func TestPrimaryWithoutBindings(t *testing.T) {
	registry, _ := newRegistry(t)

	_, err := registry.Primary(1)
	assert.ErrorIs(t, err, binding.ErrProviderAccountNotAvailable)
}
