package instance

import (
	"context"
	"time"

	"github.com/cloudkeep/cloudkeep/internal/model"
)

const (
	// DefaultWaitDeadline bounds the total time a readiness wait may take.
	DefaultWaitDeadline = 5 * time.Minute
	// DefaultWaitInterval is the pause between readiness checks.
	DefaultWaitInterval = 10 * time.Second
)

// WaitResult is the terminal outcome of a readiness wait. A deadline that
// elapses before the instance initializes is a normal outcome, not an
// error: Ready is false and Instance is nil.
type WaitResult struct {
	Instance *model.Instance
	Ready    bool
}

type instanceWatcher interface {
	SyncForAccount(ctx context.Context, accountID uint) ([]model.Instance, error)
}

// Poller observes instance initialization after a create or upgrade. Its
// wait budget runs to minutes, so it must live off the caller's request
// path; cancellation is cooperative through the context.
type Poller struct {
	watcher  instanceWatcher
	deadline time.Duration
	interval time.Duration
}

func NewPoller(watcher instanceWatcher, deadline, interval time.Duration) *Poller {
	if deadline <= 0 {
		deadline = DefaultWaitDeadline
	}
	if interval <= 0 {
		interval = DefaultWaitInterval
	}
	return &Poller{
		watcher:  watcher,
		deadline: deadline,
		interval: interval,
	}
}

// WaitUntilReady polls the account's instance set until exactly one
// instance exists with its initialized flag set, the deadline elapses or
// ctx is cancelled. Zero instances count as "not yet ready"; lookup
// failures fail fast. The loop sleeps between attempts and holds no locks
// while waiting; it terminates within deadline plus one interval.
func (p *Poller) WaitUntilReady(ctx context.Context, accountID uint) (WaitResult, error) {
	deadline := time.NewTimer(p.deadline)
	defer deadline.Stop()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		instances, err := p.watcher.SyncForAccount(ctx, accountID)
		if err != nil {
			return WaitResult{}, err
		}
		if len(instances) == 1 && instances[0].Initialized {
			return WaitResult{Instance: &instances[0], Ready: true}, nil
		}

		select {
		case <-ctx.Done():
			return WaitResult{}, ctx.Err()
		case <-deadline.C:
			return WaitResult{Ready: false}, nil
		case <-ticker.C:
		}
	}
}
