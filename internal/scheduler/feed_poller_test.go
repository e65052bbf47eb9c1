package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/index"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
)

type fakeSource struct {
	calls  atomic.Int64
	events []domain.FeedEvent
	err    error
}

func (f *fakeSource) Fetch(_ context.Context) ([]domain.FeedEvent, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func TestRefreshUpdatesBuffer(t *testing.T) {
	source := &fakeSource{events: []domain.FeedEvent{
		{ID: "e1", Severity: domain.SeverityHigh},
	}}
	events := index.NewEvents()
	poller := NewFeedPoller(source, events, logger.Nop(), time.Hour, nil)

	if err := poller.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	all := events.All()
	if len(all) != 1 || all[0].ID != "e1" {
		t.Errorf("events = %v, want the fetched batch", all)
	}
}

func TestRefreshKeepsBufferOnError(t *testing.T) {
	events := index.NewEvents()
	events.Update([]domain.FeedEvent{{ID: "old", Severity: domain.SeverityLow}})

	source := &fakeSource{err: errors.New("endpoint down")}
	poller := NewFeedPoller(source, events, logger.Nop(), time.Hour, nil)

	if err := poller.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh() should surface the fetch error")
	}

	all := events.All()
	if len(all) != 1 || all[0].ID != "old" {
		t.Errorf("events = %v, want previous batch untouched", all)
	}
}

func TestManualTrigger(t *testing.T) {
	source := &fakeSource{}
	trigger := make(chan struct{}, 1)
	poller := NewFeedPoller(source, index.NewEvents(), logger.Nop(), time.Hour, trigger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)
	defer poller.Stop()

	// Initial fetch from Start.
	waitForCalls(t, source, 1)

	trigger <- struct{}{}
	waitForCalls(t, source, 2)
}

func TestStopHaltsPolling(t *testing.T) {
	source := &fakeSource{}
	poller := NewFeedPoller(source, index.NewEvents(), logger.Nop(), 10*time.Millisecond, nil)

	poller.Start(context.Background())
	waitForCalls(t, source, 2)
	poller.Stop()

	// A tick already in flight when Stop lands may still complete.
	time.Sleep(30 * time.Millisecond)
	settled := source.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := source.calls.Load(); got != settled {
		t.Errorf("poller kept fetching after Stop(): %d -> %d calls", settled, got)
	}
}

func waitForCalls(t *testing.T, source *fakeSource, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if source.calls.Load() >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("source reached %d calls, want at least %d", source.calls.Load(), want)
}
