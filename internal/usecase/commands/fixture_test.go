//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/domain/booking"
	"range-booking/internal/domain/resource"
	"range-booking/internal/infra/memory"
	"range-booking/internal/pkg/clock"
	"range-booking/internal/pkg/config"
	"range-booking/internal/usecase/commands"
	"range-booking/internal/usecase/queries"
	"range-booking/internal/usecase/shared"
	"range-booking/tests/common/builder"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []commands.CalendarEvent
}

func (n *recordingNotifier) Notify(_ context.Context, ev commands.CalendarEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) actions() []audit.Action {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]audit.Action, 0, len(n.events))
	for _, ev := range n.events {
		out = append(out, ev.Action)
	}
	return out
}

func (n *recordingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}

type fixture struct {
	store    *memory.Store
	clock    *clock.MockClock
	notifier *recordingNotifier
	cmds     commands.BookingCommands
	queries  queries.BookingQueries
	audit    queries.AuditQueries
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	for _, id := range []string{"R1", "R2", "R3", "R4"} {
		store.SeedResource(builder.NewResource(id, resource.TypeBay))
	}
	clk := clock.NewMockClock(builder.DefaultNow)
	rec := &recordingNotifier{}
	cfg := config.NewTestConfig().Booking
	detector := shared.NewConflictDetector()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		store:    store,
		clock:    clk,
		notifier: rec,
		cmds:     commands.NewBookingCommands(store, detector, store, rec, clk, cfg, logger),
		queries:  queries.NewBookingQueries(store, detector, cfg),
		audit:    queries.NewAuditQueries(store, cfg),
	}
}

// create goes through the public create path so every fixture booking has
// its booking_created entry.
func (f *fixture) create(t *testing.T, b *builder.BookingBuilder) booking.Snapshot {
	t.Helper()
	f.clock.Add(time.Minute)
	res, err := f.cmds.Create(context.Background(), b.BuildCreateInput())
	require.NoError(t, err)
	return res.Booking
}

func (f *fixture) createApproved(t *testing.T, b *builder.BookingBuilder) booking.Snapshot {
	t.Helper()
	snap := f.create(t, b)
	f.clock.Add(time.Minute)
	res, err := f.cmds.Approve(context.Background(), snap.ID, commands.DecisionInput{Actor: "approver@range.test", Reason: "ok"})
	require.NoError(t, err)
	require.Equal(t, booking.StatusApproved, res.Booking.Status)
	return res.Booking
}

func (f *fixture) status(t *testing.T, snap booking.Snapshot) string {
	t.Helper()
	v, err := f.queries.GetByID(context.Background(), snap.ID)
	require.NoError(t, err)
	return v.Status
}

func (f *fixture) trail(t *testing.T, snap booking.Snapshot) []*queries.AuditEntryView {
	t.Helper()
	entries, err := f.audit.Trail(context.Background(), snap.ID)
	require.NoError(t, err)
	return entries
}

func actionsOf(entries []*queries.AuditEntryView) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Action)
	}
	return out
}

func slot(resourceIDs ...string) *builder.BookingBuilder {
	return builder.NewBookingBuilder().WithResources(resourceIDs...)
}
