package instance

import (
	"context"
	"errors"
)

var (
	// ErrNotAvailable covers an absent instance, an instance in the wrong
	// state for the requested action and violations of the one-instance-per-
	// account invariant. The caller may retry once a state-changing action
	// has completed.
	ErrNotAvailable = errors.New("instance not available")

	// ErrAccountNotFound signals an instance referencing an account that
	// cannot be resolved. This is a data-integrity failure, logged and
	// surfaced, never swallowed.
	ErrAccountNotFound = errors.New("instance account not found")

	// ErrVersionNotSupported is returned when a create request names a
	// version absent from the catalog.
	ErrVersionNotSupported = errors.New("version not supported")
)

// ProviderInstance identifies a compute resource allocated by the backend.
type ProviderInstance struct {
	ID       string
	HostName string
}

// UserRole is the per-user role entry pushed to a running instance.
type UserRole struct {
	Email string
	Role  string
}

// ComputeBackend drives the external compute provisioning API. Create may
// be slow; Stop and Restart only issue the call and never block for
// completion. Status queries the provider's view of the instance state.
type ComputeBackend interface {
	Create(ctx context.Context, subdomain, version string) (ProviderInstance, error)
	Stop(ctx context.Context, providerInstanceID string) error
	Restart(ctx context.Context, providerInstanceID string) error
	Status(ctx context.Context, providerInstanceID string) (string, error)
	Initialize(ctx context.Context, hostName string, cfg Config) error
	InitializeUserRoles(ctx context.Context, hostName string, roles []UserRole) error
}

// VersionCatalog is the read-only catalog of releasable instance versions.
type VersionCatalog interface {
	Latest() (string, error)
	Supported() ([]string, error)
}
