package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/fit-sync/internal/adapter"
	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
)

type connectivityMonitor struct {
	remote   adapter.RemoteStore
	listener ConnectivityListener
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewConnectivityMonitor creates a monitor that pings remote every interval
// and reports reachability changes to listener. A non-positive interval
// defaults to [config.DefaultProbeInterval].
func NewConnectivityMonitor(remote adapter.RemoteStore, listener ConnectivityListener, interval time.Duration, logger *logger.Logger) ConnectivityMonitor {
	if interval <= 0 {
		interval = config.DefaultProbeInterval
	}
	return &connectivityMonitor{
		remote:   remote,
		listener: listener,
		interval: interval,
		logger:   logger,
	}
}

// Run implements ConnectivityMonitor. The first probe happens immediately and
// is always reported; after that only changes reach the listener.
func (m *connectivityMonitor) Run(ctx context.Context) error {
	t := time.NewTicker(m.interval)
	defer t.Stop()

	var online, reported bool
	check := func() {
		up, ok := m.probe(ctx)
		if !ok || (reported && up == online) {
			return
		}
		online, reported = up, true
		m.listener.SetConnectivity(up)
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			check()
		}
	}
}

// Start implements ConnectivityMonitor.
func (m *connectivityMonitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		_ = m.Run(jobCtx)
	}()
}

// Stop implements ConnectivityMonitor. Safe to call when the monitor is not
// running.
func (m *connectivityMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// probe pings the remote store. ok is false when ctx ended during the ping.
func (m *connectivityMonitor) probe(ctx context.Context) (online, ok bool) {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.remote.Ping(probeCtx)
	if ctx.Err() != nil {
		return false, false
	}
	if err != nil {
		m.logger.Debug().Err(err).Msg("connectivity probe failed")
	}
	return err == nil, true
}
