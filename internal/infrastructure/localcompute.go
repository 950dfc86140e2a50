package infrastructure

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/cloudkeep/cloudkeep/internal/instance"
)

type localInstance struct {
	hostName string
	version  string
	state    string
}

// LocalCompute is a development stand-in for the compute provisioning
// backend. Instances live in memory and advance one lifecycle step per
// status query; delivered configuration payloads are written to the given
// filesystem so they can be inspected.
type LocalCompute struct {
	fs        afero.Fs
	root      string
	mu        sync.Mutex
	instances map[string]*localInstance
}

func NewLocalCompute(fs afero.Fs, root string) *LocalCompute {
	return &LocalCompute{
		fs:        fs,
		root:      root,
		instances: map[string]*localInstance{},
	}
}

func (l *LocalCompute) Create(ctx context.Context, subdomain, version string) (instance.ProviderInstance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := uuid.NewString()
	l.instances[id] = &localInstance{
		hostName: fmt.Sprintf("%s.cloudkeep.example", subdomain),
		version:  version,
		state:    "creating",
	}
	return instance.ProviderInstance{ID: id, HostName: l.instances[id].hostName}, nil
}

func (l *LocalCompute) Stop(ctx context.Context, providerInstanceID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.instances[providerInstanceID]; !ok {
		return fmt.Errorf("unknown instance %s", providerInstanceID)
	}
	delete(l.instances, providerInstanceID)
	return nil
}

func (l *LocalCompute) Restart(ctx context.Context, providerInstanceID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	inst, ok := l.instances[providerInstanceID]
	if !ok {
		return fmt.Errorf("unknown instance %s", providerInstanceID)
	}
	inst.state = "restarting"
	return nil
}

// Status reports the instance state, advancing it one step per call so a
// freshly created instance becomes running after a few polls.
func (l *LocalCompute) Status(ctx context.Context, providerInstanceID string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inst, ok := l.instances[providerInstanceID]
	if !ok {
		return "", fmt.Errorf("unknown instance %s", providerInstanceID)
	}

	switch inst.state {
	case "creating":
		inst.state = "initializing"
	case "initializing", "restarting":
		inst.state = "running"
	}
	return inst.state, nil
}

func (l *LocalCompute) Initialize(ctx context.Context, hostName string, cfg instance.Config) error {
	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return afero.WriteFile(l.fs, filepath.Join(l.root, hostName+".yml"), contents, 0644)
}

func (l *LocalCompute) InitializeUserRoles(ctx context.Context, hostName string, roles []instance.UserRole) error {
	contents, err := yaml.Marshal(roles)
	if err != nil {
		return err
	}
	return afero.WriteFile(l.fs, filepath.Join(l.root, hostName+"-roles.yml"), contents, 0644)
}
