package service

import (
	"context"
	"sync"
	"time"

	"lgsmfleet/helpers"
	"lgsmfleet/hub/domain"
	"lgsmfleet/hub/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

const (
	DefaultHeartbeatInterval = 60 * time.Second
	DefaultPollTimeout       = 5 * time.Second
)

// Monitor polls every registered spoke on a fixed interval and turns failed
// polls into alerts. It keeps no state between cycles, so a spoke that stays
// down for N cycles yields N alerts.
type Monitor struct {
	spokes   interfaces.SpokeStore
	probe    interfaces.SpokeProbe
	sink     interfaces.AlertSink
	clock    interfaces.TimeProvider
	interval time.Duration
	timeout  time.Duration
	newID    func() uuid.UUID
	logger   log.Logger
}

type MonitorOption func(*Monitor)

// WithInterval sets the time between cycles.
func WithInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) { m.interval = d }
}

// WithPollTimeout bounds each individual poll.
func WithPollTimeout(d time.Duration) MonitorOption {
	return func(m *Monitor) { m.timeout = d }
}

// WithIDGenerator replaces uuid.New for alert ids.
func WithIDGenerator(f func() uuid.UUID) MonitorOption {
	return func(m *Monitor) { m.newID = f }
}

// NewMonitor creates a Monitor. Panics on nil dependencies or non-positive durations.
func NewMonitor(
	spokes interfaces.SpokeStore,
	probe interfaces.SpokeProbe,
	sink interfaces.AlertSink,
	clock interfaces.TimeProvider,
	logger log.Logger,
	opts ...MonitorOption,
) *Monitor {
	m := &Monitor{
		spokes:   helpers.NilPanic(spokes, "service.monitor.go: spokes is required"),
		probe:    helpers.NilPanic(probe, "service.monitor.go: probe is required"),
		sink:     helpers.NilPanic(sink, "service.monitor.go: sink is required"),
		clock:    helpers.NilPanic(clock, "service.monitor.go: clock is required"),
		interval: DefaultHeartbeatInterval,
		timeout:  DefaultPollTimeout,
		newID:    uuid.New,
		logger:   log.With(helpers.NilPanic(logger, "service.monitor.go: logger is required"), "component", "heartbeat"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.interval <= 0 || m.timeout <= 0 {
		panic("service.monitor.go: interval and poll timeout must be positive")
	}
	helpers.NilPanic(m.newID, "service.monitor.go: id generator is required")
	return m
}

// Run starts a cycle every interval until ctx is done. Cycles run in their own
// goroutines so a slow spoke never delays the next tick.
func (m *Monitor) Run(ctx context.Context) {
	level.Info(m.logger).Log("msg", "heartbeat monitor started", "interval", m.interval, "timeout", m.timeout)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		select {
		case <-ctx.Done():
			level.Info(m.logger).Log("msg", "heartbeat monitor stopped")
			return
		case <-ticker.C:
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.RunCycle(ctx)
			}()
		}
	}
}

// RunCycle snapshots the registry, polls every spoke concurrently and sends
// one alert per failed poll. It returns the alerts it produced once every poll
// of this cycle has finished.
func (m *Monitor) RunCycle(ctx context.Context) []domain.AlertEvent {
	spokes, err := m.spokes.List(ctx)
	if err != nil {
		level.Error(m.logger).Log("msg", "cannot list spokes, skipping cycle", "err", err)
		return nil
	}

	var (
		mu     sync.Mutex
		alerts []domain.AlertEvent
		wg     sync.WaitGroup
	)
	for _, s := range spokes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev, failed := m.poll(ctx, s)
			if !failed {
				return
			}
			mu.Lock()
			alerts = append(alerts, ev)
			mu.Unlock()
			if err := m.sink.Send(ctx, ev); err != nil {
				level.Error(m.logger).Log("msg", "alert delivery failed", "spoke", s.Name, "alert_id", ev.ID, "err", err)
			}
		}()
	}
	wg.Wait()
	level.Debug(m.logger).Log("msg", "heartbeat cycle done", "spokes", len(spokes), "alerts", len(alerts))
	return alerts
}

func (m *Monitor) poll(ctx context.Context, s domain.Spoke) (domain.AlertEvent, bool) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	res, err := m.probe.Status(ctx, s)
	switch {
	case err != nil:
		level.Warn(m.logger).Log("msg", "spoke unreachable", "spoke", s.Name, "ip", s.IP, "err", err)
		return domain.NewOfflineAlert(m.newID(), s, err, m.clock.Now()), true
	case !res.OK():
		level.Warn(m.logger).Log("msg", "spoke degraded", "spoke", s.Name, "ip", s.IP, "status_code", res.StatusCode)
		return domain.NewDegradedAlert(m.newID(), s, res.StatusCode, m.clock.Now()), true
	default:
		return domain.AlertEvent{}, false
	}
}
