package sync

import (
	"context"
	"time"
)

// Pacer spaces out remote calls to stay under the remote rate limit.
type Pacer struct {
	sleep     func(ctx context.Context, d time.Duration) error
	ItemDelay time.Duration
	PageDelay time.Duration
}

// NewPacer creates a pacer with the given delays.
func NewPacer(itemDelay, pageDelay time.Duration) *Pacer {
	return &Pacer{
		ItemDelay: itemDelay,
		PageDelay: pageDelay,
		sleep:     sleepContext,
	}
}

// Item waits between two batch items.
func (p *Pacer) Item(ctx context.Context) error {
	return p.sleep(ctx, p.ItemDelay)
}

// Page waits between two query pages.
func (p *Pacer) Page(ctx context.Context) error {
	return p.sleep(ctx, p.PageDelay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
