//go:build unit

package calendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"range-booking/internal/infra/calendar"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := calendar.NewKafkaPublisherWithWriter(w)
	ev := calendar.NewEvent(approvedEvent(t))

	require.NoError(t, p.Publish(context.Background(), ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, ev.BookingID.String(), string(msg.Key))

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "booking.approved", headers[calendar.HeaderEventType])
	assert.Equal(t, ev.EventID.String(), headers[calendar.HeaderEventID])
	assert.Equal(t, "range-booking", headers[calendar.HeaderSource])

	var decoded calendar.Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, ev.RequestCode, decoded.RequestCode)
	assert.True(t, decoded.Start.Equal(ev.Start))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := calendar.NewKafkaPublisherWithWriter(&fakeWriter{err: errors.New("leader not available")})

	err := p.Publish(context.Background(), calendar.NewEvent(approvedEvent(t)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leader not available")
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	_, err := calendar.NewKafkaPublisher(nil, "booking-events")
	assert.Error(t, err)

	_, err = calendar.NewKafkaPublisher([]string{"localhost:9092"}, "")
	assert.Error(t, err)
}
