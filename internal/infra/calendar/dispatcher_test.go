//go:build unit

package calendar_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"range-booking/internal/domain/audit"
	"range-booking/internal/infra/calendar"
	"range-booking/internal/usecase/commands"
	"range-booking/tests/common/builder"
	calendarmock "range-booking/tests/mock/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func approvedEvent(t *testing.T) commands.CalendarEvent {
	t.Helper()
	b, err := builder.NewBookingBuilder().AsApproved().BuildDomain()
	require.NoError(t, err)
	return commands.CalendarEvent{
		Action:     audit.ActionApproved,
		Booking:    b.Snapshot(),
		OccurredAt: builder.DefaultNow,
	}
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := calendarmock.NewMockPublisher(ctrl)
	var mu sync.Mutex
	var got []string
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, ev calendar.Event) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			mu.Lock()
			got = append(got, ev.Action)
			mu.Unlock()
			return nil
		}).Times(2)
	publisher.EXPECT().Close().Return(nil)

	d := calendar.NewDispatcher(publisher, 8, time.Second, discardLogger())
	d.Start()

	ev := approvedEvent(t)
	d.Notify(context.Background(), ev)
	ev.Action = audit.ActionCancelled
	d.Notify(context.Background(), ev)

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, []string{"approved", "cancelled"}, got)
}

func TestDispatcher_PublishFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := calendarmock.NewMockPublisher(ctrl)
	gomock.InOrder(
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable")),
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, calendar.Event) error { panic("boom") }),
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
	)
	publisher.EXPECT().Close().Return(nil)

	d := calendar.NewDispatcher(publisher, 8, time.Second, discardLogger())
	d.Start()
	for range 3 {
		d.Notify(context.Background(), approvedEvent(t))
	}
	require.NoError(t, d.Stop(context.Background()))
}

func TestDispatcher_FullQueueDrops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := calendarmock.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	publisher.EXPECT().Close().Return(nil)

	d := calendar.NewDispatcher(publisher, 1, time.Second, discardLogger())

	ev := approvedEvent(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Notify(context.Background(), ev)
		d.Notify(context.Background(), ev)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}

	d.Start()
	require.NoError(t, d.Stop(context.Background()))
}

func TestDispatcher_NotifyAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := calendarmock.NewMockPublisher(ctrl)
	publisher.EXPECT().Close().Return(nil).Times(1)

	d := calendar.NewDispatcher(publisher, 4, time.Second, discardLogger())
	d.Start()
	require.NoError(t, d.Stop(context.Background()))
	require.NoError(t, d.Stop(context.Background()))

	assert.NotPanics(t, func() {
		d.Notify(context.Background(), approvedEvent(t))
	})
}

func TestNewEvent(t *testing.T) {
	ev := approvedEvent(t)
	ev.Action = audit.ActionBumped
	ev.RelatedRequestCode = "RB-20250601-ABCDEF12"

	got := calendar.NewEvent(ev)

	assert.Equal(t, "bumped", got.Action)
	assert.Equal(t, "booking.bumped", got.RoutingKey())
	assert.Equal(t, ev.Booking.ID, got.BookingID)
	assert.Equal(t, "approved", got.Status)
	assert.Equal(t, []string{"bay-1"}, got.ResourceIDs)
	assert.Equal(t, "2025-06-14", got.LocalDate)
	assert.Equal(t, "09:00", got.LocalStart)
	assert.Equal(t, "RB-20250601-ABCDEF12", got.RelatedRequestCode)
	assert.NotEqual(t, got.EventID, calendar.NewEvent(ev).EventID)
}
