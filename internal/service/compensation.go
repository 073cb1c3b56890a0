package service

import (
	"context"
	"time"

	"github.com/jrmeyers92/client-portals/internal/logger"
)

type undoFunc func(ctx context.Context) error

type compensation struct {
	name  string
	undo  undoFunc
	guard bool
}

// compensator is the attempt-scoped stack of undo actions. It is owned by a single call.
type compensator struct {
	steps []compensation
}

func (c *compensator) push(name string, undo undoFunc) {
	c.steps = append(c.steps, compensation{name: name, undo: undo})
}

// pushGuard registers an action the older actions depend on. If it fails, the run
// stops and everything registered before it is kept.
func (c *compensator) pushGuard(name string, undo undoFunc) {
	c.steps = append(c.steps, compensation{name: name, undo: undo, guard: true})
}

// discard forgets every registered action, once their effects are owned elsewhere
func (c *compensator) discard() {
	c.steps = nil
}

func (c *compensator) len() int {
	return len(c.steps)
}

// run executes the actions newest first. Cancellation of ctx is ignored so a
// cancelled request still cleans up; timeout bounds the whole run. Failures are
// logged and counted, never returned. A failed guard counts every action it
// protects as failed without running it.
func (c *compensator) run(ctx context.Context, timeout time.Duration) int {
	if len(c.steps) == 0 {
		return 0
	}

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	log := logger.WithContext(ctx)
	failed := 0
	for i := len(c.steps) - 1; i >= 0; i-- {
		step := c.steps[i]
		if err := step.undo(cleanupCtx); err != nil {
			failed++
			log.WithError(err).WithField("compensation", step.name).Error("compensation step failed")
			if step.guard {
				for _, kept := range c.steps[:i] {
					failed++
					log.WithField("compensation", kept.name).Warn("compensation step skipped, kept for manual repair")
				}
				break
			}
			continue
		}
		log.WithField("compensation", step.name).Info("compensation step completed")
	}
	c.steps = nil
	return failed
}
