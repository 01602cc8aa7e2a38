package calendar

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"range-booking/internal/usecase/commands"
)

// Dispatcher implements commands.CalendarNotifier with a bounded queue and a
// single worker. Notify never blocks: when the queue is full the event is
// dropped and logged.
type Dispatcher struct {
	publisher Publisher
	timeout   time.Duration
	logger    *slog.Logger

	jobs     chan Event
	done     chan struct{}
	mu       sync.RWMutex
	started  bool
	stopped  bool
	stopOnce sync.Once
}

func NewDispatcher(publisher Publisher, queueSize int, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
		jobs:      make(chan Event, queueSize),
		done:      make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true
	go d.loop()
}

// Stop drains queued events, waiting at most until ctx is done, then closes
// the publisher.
func (d *Dispatcher) Stop(ctx context.Context) error {
	var err error
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		started := d.started
		close(d.jobs)
		d.mu.Unlock()

		if started {
			select {
			case <-d.done:
			case <-ctx.Done():
				d.logger.Warn("calendar dispatcher stopped before draining", "pending", len(d.jobs))
			}
		}
		if d.publisher != nil {
			err = d.publisher.Close()
		}
	})
	return err
}

func (d *Dispatcher) Notify(ctx context.Context, ev commands.CalendarEvent) {
	event := NewEvent(ev)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.logger.WarnContext(ctx, "calendar event dropped after shutdown",
			"action", event.Action, "request_code", event.RequestCode)
		return
	}
	select {
	case d.jobs <- event:
	default:
		d.logger.WarnContext(ctx, "calendar queue full, event dropped",
			"action", event.Action, "request_code", event.RequestCode)
	}
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for ev := range d.jobs {
		d.publish(ev)
	}
}

func (d *Dispatcher) publish(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("calendar publisher panicked", "action", ev.Action, "request_code", ev.RequestCode, "panic", r)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	if err := d.publisher.Publish(ctx, ev); err != nil {
		d.logger.Error("calendar sync failed",
			"action", ev.Action,
			"request_code", ev.RequestCode,
			"error", err.Error())
	}
}
