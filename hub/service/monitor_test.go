package service

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"lgsmfleet/helpers"
	"lgsmfleet/hub/domain"
	"lgsmfleet/hub/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	spokeA = domain.Spoke{ID: 1, Name: "alpha", IP: "10.0.0.1", Port: 49950, APIKey: "ka"}
	spokeB = domain.Spoke{ID: 2, Name: "bravo", IP: "10.0.0.2", Port: 49950, APIKey: "kb"}
	spokeC = domain.Spoke{ID: 3, Name: "charlie", IP: "10.0.0.3", Port: 49950, APIKey: "kc"}
)

func fixedClock() *mock.TimeProviderMock {
	return &mock.TimeProviderMock{NowFunc: helpers.TestNow}
}

func listOf(spokes ...domain.Spoke) *mock.SpokeStoreMock {
	return &mock.SpokeStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Spoke, error) { return spokes, nil },
	}
}

func probeBy(byName map[string]func(ctx context.Context) (domain.ProbeResult, error)) *mock.SpokeProbeMock {
	return &mock.SpokeProbeMock{
		StatusFunc: func(ctx context.Context, s domain.Spoke) (domain.ProbeResult, error) {
			return byName[s.Name](ctx)
		},
	}
}

func answer(code int) func(ctx context.Context) (domain.ProbeResult, error) {
	return func(ctx context.Context) (domain.ProbeResult, error) {
		return domain.ProbeResult{StatusCode: code, Body: []byte(`{"status":"online"}`)}, nil
	}
}

func unreachable(ctx context.Context) (domain.ProbeResult, error) {
	return domain.ProbeResult{}, errors.New("dial tcp 10.0.0.2:49950: connect: connection refused")
}

func hang(ctx context.Context) (domain.ProbeResult, error) {
	<-ctx.Done()
	return domain.ProbeResult{}, ctx.Err()
}

func byKind(alerts []domain.AlertEvent) map[string]domain.AlertEvent {
	out := make(map[string]domain.AlertEvent, len(alerts))
	for _, a := range alerts {
		out[a.SpokeName] = a
	}
	return out
}

func TestMonitor_RunCycle(t *testing.T) {
	t.Run("healthy spokes produce no alerts", func(t *testing.T) {
		sink := &mock.AlertSinkMock{}
		m := NewMonitor(listOf(spokeA, spokeB), probeBy(map[string]func(context.Context) (domain.ProbeResult, error){
			"alpha": answer(200),
			"bravo": answer(200),
		}), sink, fixedClock(), log.NewNopLogger())

		assert.Empty(t, m.RunCycle(context.Background()))
		assert.Empty(t, sink.SendCalls())
	})

	t.Run("offline and degraded are distinct", func(t *testing.T) {
		sink := &mock.AlertSinkMock{}
		m := NewMonitor(listOf(spokeA, spokeB, spokeC), probeBy(map[string]func(context.Context) (domain.ProbeResult, error){
			"alpha":   answer(500),
			"bravo":   unreachable,
			"charlie": answer(200),
		}), sink, fixedClock(), log.NewNopLogger())

		alerts := byKind(m.RunCycle(context.Background()))
		require.Len(t, alerts, 2)
		assert.Len(t, sink.SendCalls(), 2)

		deg := alerts["alpha"]
		assert.Equal(t, domain.AlertDegraded, deg.Kind)
		assert.Equal(t, 500, deg.StatusCode)
		assert.Equal(t, "⚠️ Spoke Alert: alpha (10.0.0.1) is unresponsive (HTTP 500)", deg.Message)
		assert.Equal(t, helpers.TestNow(), deg.Time)

		off := alerts["bravo"]
		assert.Equal(t, domain.AlertOffline, off.Kind)
		assert.Equal(t, "🚨 Spoke CRITICAL: bravo (10.0.0.2) is OFFLINE", off.Message)
		assert.Contains(t, off.Cause, "connection refused")
		assert.NotEqual(t, deg.Message, off.Message)
	})

	t.Run("timeout is offline and does not hold back other spokes", func(t *testing.T) {
		sink := &mock.AlertSinkMock{}
		m := NewMonitor(listOf(spokeA, spokeB), probeBy(map[string]func(context.Context) (domain.ProbeResult, error){
			"alpha": hang,
			"bravo": answer(503),
		}), sink, fixedClock(), log.NewNopLogger(), WithPollTimeout(50*time.Millisecond))

		start := time.Now()
		alerts := byKind(m.RunCycle(context.Background()))
		assert.Less(t, time.Since(start), 2*time.Second)

		require.Len(t, alerts, 2)
		assert.Equal(t, domain.AlertOffline, alerts["alpha"].Kind)
		assert.Contains(t, alerts["alpha"].Cause, context.DeadlineExceeded.Error())
		assert.Equal(t, domain.AlertDegraded, alerts["bravo"].Kind)
	})

	t.Run("each poll gets its own deadline", func(t *testing.T) {
		probe := &mock.SpokeProbeMock{
			StatusFunc: func(ctx context.Context, s domain.Spoke) (domain.ProbeResult, error) {
				deadline, ok := ctx.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(DefaultPollTimeout), deadline, time.Second)
				return domain.ProbeResult{StatusCode: 200}, nil
			},
		}
		m := NewMonitor(listOf(spokeA, spokeB), probe, &mock.AlertSinkMock{}, fixedClock(), log.NewNopLogger())

		m.RunCycle(context.Background())
		calls := probe.StatusCalls()
		require.Len(t, calls, 2)
		names := []string{calls[0].Spoke.Name, calls[1].Spoke.Name}
		sort.Strings(names)
		assert.Equal(t, []string{"alpha", "bravo"}, names)
	})

	t.Run("repeated failures are not deduplicated", func(t *testing.T) {
		sink := &mock.AlertSinkMock{}
		var n atomic.Int32
		m := NewMonitor(listOf(spokeB), probeBy(map[string]func(context.Context) (domain.ProbeResult, error){
			"bravo": unreachable,
		}), sink, fixedClock(), log.NewNopLogger(), WithIDGenerator(func() uuid.UUID {
			return uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(n.Add(1))})
		}))

		for i := 0; i < 3; i++ {
			require.Len(t, m.RunCycle(context.Background()), 1)
		}
		calls := sink.SendCalls()
		require.Len(t, calls, 3)
		assert.NotEqual(t, calls[0].Event.ID, calls[1].Event.ID)
		assert.NotEqual(t, calls[1].Event.ID, calls[2].Event.ID)
	})

	t.Run("sink failure does not stop other alerts", func(t *testing.T) {
		var sent atomic.Int32
		sink := &mock.AlertSinkMock{
			SendFunc: func(ctx context.Context, ev domain.AlertEvent) error {
				sent.Add(1)
				if ev.SpokeName == "alpha" {
					return errors.New("webhook down")
				}
				return nil
			},
		}
		m := NewMonitor(listOf(spokeA, spokeB), probeBy(map[string]func(context.Context) (domain.ProbeResult, error){
			"alpha": unreachable,
			"bravo": unreachable,
		}), sink, fixedClock(), log.NewNopLogger())

		assert.Len(t, m.RunCycle(context.Background()), 2)
		assert.Equal(t, int32(2), sent.Load())
	})

	t.Run("store failure skips the cycle", func(t *testing.T) {
		probe := &mock.SpokeProbeMock{}
		store := &mock.SpokeStoreMock{
			ListFunc: func(ctx context.Context) ([]domain.Spoke, error) { return nil, assert.AnError },
		}
		m := NewMonitor(store, probe, &mock.AlertSinkMock{}, fixedClock(), log.NewNopLogger())

		assert.Nil(t, m.RunCycle(context.Background()))
		assert.Empty(t, probe.StatusCalls())
	})

	t.Run("empty registry", func(t *testing.T) {
		m := NewMonitor(listOf(), &mock.SpokeProbeMock{}, &mock.AlertSinkMock{}, fixedClock(), log.NewNopLogger())
		assert.Empty(t, m.RunCycle(context.Background()))
	})
}

func TestMonitor_Run(t *testing.T) {
	t.Run("cycles do not wait for slow polls", func(t *testing.T) {
		var lists atomic.Int32
		store := &mock.SpokeStoreMock{
			ListFunc: func(ctx context.Context) ([]domain.Spoke, error) {
				lists.Add(1)
				return []domain.Spoke{spokeA}, nil
			},
		}
		release := make(chan struct{})
		probe := &mock.SpokeProbeMock{
			StatusFunc: func(ctx context.Context, s domain.Spoke) (domain.ProbeResult, error) {
				select {
				case <-release:
				case <-ctx.Done():
				}
				return domain.ProbeResult{StatusCode: 200}, nil
			},
		}
		m := NewMonitor(store, probe, &mock.AlertSinkMock{}, fixedClock(), log.NewNopLogger(),
			WithInterval(10*time.Millisecond), WithPollTimeout(time.Minute))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			m.Run(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool { return lists.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
		close(release)
		cancel()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})

	t.Run("does not poll before the first interval", func(t *testing.T) {
		store := listOf(spokeA)
		m := NewMonitor(store, &mock.SpokeProbeMock{}, &mock.AlertSinkMock{}, fixedClock(), log.NewNopLogger(),
			WithInterval(time.Hour))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		m.Run(ctx)
		assert.Empty(t, store.ListCalls())
	})
}

func TestNewMonitor_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.monitor.go: spokes is required", func() {
		NewMonitor(nil, &mock.SpokeProbeMock{}, &mock.AlertSinkMock{}, fixedClock(), log.NewNopLogger())
	})
	assert.Panics(t, func() {
		NewMonitor(listOf(), &mock.SpokeProbeMock{}, &mock.AlertSinkMock{}, fixedClock(), log.NewNopLogger(), WithInterval(0))
	})
}
