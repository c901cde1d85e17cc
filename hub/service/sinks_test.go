package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"lgsmfleet/hub/domain"
	"lgsmfleet/hub/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.NewLogfmtLogger(&buf))
	ev := domain.NewOfflineAlert(uuid.New(), spokeA, errors.New("timeout"), time.Time{})

	require.NoError(t, sink.Send(context.Background(), ev))
	out := buf.String()
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "kind=offline")
	assert.Contains(t, out, "spoke=alpha")
	assert.Contains(t, out, "cause=timeout")
}

func TestMultiSink(t *testing.T) {
	ok := &mock.AlertSinkMock{}
	failing := &mock.AlertSinkMock{
		SendFunc: func(ctx context.Context, ev domain.AlertEvent) error { return errors.New("webhook down") },
	}
	last := &mock.AlertSinkMock{}
	sink := NewMultiSink(failing, ok, last)

	err := sink.Send(context.Background(), domain.NewDegradedAlert(uuid.New(), spokeA, 500, time.Time{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook down")
	assert.Len(t, ok.SendCalls(), 1)
	assert.Len(t, last.SendCalls(), 1)

	assert.NoError(t, NewMultiSink(ok).Send(context.Background(), domain.AlertEvent{}))
}

func TestTimeProvider(t *testing.T) {
	fixed := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, NewTimeProvider(func() time.Time { return fixed }).Now())
	assert.PanicsWithValue(t, "service.time_provider.go: now is required", func() { NewTimeProvider(nil) })
}
