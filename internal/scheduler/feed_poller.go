package scheduler

import (
	"context"
	"time"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/index"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
)

// EventSource yields the latest feed batch. Implemented by the feed
// loader/mapper pair; faked in tests.
type EventSource interface {
	Fetch(ctx context.Context) ([]domain.FeedEvent, error)
}

// FeedPoller periodically refreshes the disaster feed while enabled.
// One fetch runs per tick; a manual trigger channel allows immediate
// refresh. Stop is deterministic.
type FeedPoller struct {
	source        EventSource
	events        *index.Events
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewFeedPoller creates a new feed poller.
func NewFeedPoller(
	source EventSource,
	events *index.Events,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *FeedPoller {
	return &FeedPoller{
		source:        source,
		events:        events,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start fetches once immediately, then keeps refreshing on the interval
// until Stop or context cancellation. The initial fetch failing is not
// fatal: the feed stays empty until the next tick succeeds.
func (fp *FeedPoller) Start(ctx context.Context) {
	if err := fp.Refresh(ctx); err != nil {
		fp.logger.Warn("initial feed fetch failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(fp.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := fp.Refresh(ctx); err != nil {
					fp.logger.Error("failed to refresh feed",
						logger.Error(err))
				}
			case <-fp.manualTrigger:
				fp.logger.Info("manual feed refresh triggered")
				if err := fp.Refresh(ctx); err != nil {
					fp.logger.Error("failed to refresh feed",
						logger.Error(err))
				}
			case <-fp.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the poller.
func (fp *FeedPoller) Stop() {
	close(fp.stopCh)
}

// Refresh fetches the feed once and replaces the event buffer.
func (fp *FeedPoller) Refresh(ctx context.Context) error {
	events, err := fp.source.Fetch(ctx)
	if err != nil {
		return err
	}

	fp.events.Update(events)
	fp.logger.Info("feed refreshed",
		logger.Int("count", len(events)))
	return nil
}
