package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultPollInterval matches the refresh cadence of the linking
// detail views this poller replaces.
const DefaultPollInterval = 10 * time.Second

// Poller runs a task on a fixed interval until its context is
// canceled, tying the polling lifetime explicitly to the caller
// instead of leaving ambient timers behind.
type Poller struct {
	interval time.Duration
	task     func(ctx context.Context)
}

func NewPoller(interval time.Duration, task func(ctx context.Context)) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{interval: interval, task: task}
}

// Run executes the task immediately and then on every tick until ctx
// is canceled.
func (p *Poller) Run(ctx context.Context) {
	p.task(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("Poller stopped")
			return
		case <-ticker.C:
			p.task(ctx)
		}
	}
}
