package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/inventra/inventra/internal/event_bus"
	"github.com/inventra/inventra/internal/upstream"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Poller re-fetches the bell notifications on a fixed interval while the
// service runs, the way the dashboard header kept its unread badge current.
// The latest snapshot is served from memory; a failed fetch keeps the
// previous one and marks it stale. Stop cancels the schedule so nothing keeps
// ticking after shutdown.
type Poller struct {
	service  Service
	bus      *event_bus.EventBus
	interval time.Duration
	cron     *cron.Cron

	mu        sync.RWMutex
	latest    []Activity
	fetchedAt time.Time
	stale     bool
}

func NewPoller(service Service, bus *event_bus.EventBus, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	p := &Poller{
		service:  service,
		bus:      bus,
		interval: interval,
		cron:     cron.New(),
	}
	if bus != nil {
		// A fresh login should populate the bell right away instead of
		// waiting out the polling interval; a logout must not keep serving
		// the previous user's notifications.
		bus.Subscribe(event_bus.SessionStarted, func(event_bus.Event) error {
			go p.refresh()
			return nil
		})
		bus.Subscribe(event_bus.SessionEnded, func(event_bus.Event) error {
			p.reset()
			return nil
		})
	}
	return p
}

// Start schedules the periodic refresh and runs the first fetch right away.
func (p *Poller) Start() error {
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(spec, p.refresh); err != nil {
		return fmt.Errorf("failed to schedule notification poller: %w", err)
	}
	p.cron.Start()
	go p.refresh()
	log.Infof("notification poller started (every %s)", p.interval)
	return nil
}

// Stop cancels the schedule and waits for a running refresh to finish.
func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	log.Info("notification poller stopped")
}

// Snapshot returns the most recent notifications together with the fetch
// time and whether the data is stale.
func (p *Poller) Snapshot() ([]Activity, time.Time, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	items := make([]Activity, len(p.latest))
	copy(items, p.latest)
	return items, p.fetchedAt, p.stale
}

// reset drops the snapshot entirely.
func (p *Poller) reset() {
	p.mu.Lock()
	p.latest = nil
	p.fetchedAt = time.Time{}
	p.stale = false
	p.mu.Unlock()
}

func (p *Poller) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	items, err := p.service.List(ctx)

	p.mu.Lock()
	if err != nil {
		p.stale = true
	} else {
		p.latest = items
		p.fetchedAt = time.Now()
		p.stale = false
	}
	count := len(p.latest)
	fetchedAt := p.fetchedAt
	stale := p.stale
	p.mu.Unlock()

	if err != nil {
		if errors.Is(err, upstream.ErrUnauthenticated) {
			log.Debug("notification poll skipped: not logged in")
		} else {
			log.Warnf("notification poll failed, serving previous snapshot: %v", err)
		}
	}

	if p.bus != nil {
		event := event_bus.NewEvent(ctx, event_bus.NotificationsRefreshed, event_bus.NotificationsSnapshot{
			Count:     count,
			FetchedAt: fetchedAt,
			Stale:     stale,
		})
		if err := p.bus.Publish(event); err != nil {
			log.Debugf("notification refresh event not fully handled: %v", err)
		}
	}
}
