package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/fit-sync/internal/adapter"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/store"
	"github.com/MKhiriev/fit-sync/internal/validators"
	"github.com/MKhiriev/fit-sync/models"
)

const (
	taskSync  = "sync"
	taskRetry = "sync-retry"
)

type syncEngine struct {
	local     store.LocalStorage
	remote    adapter.RemoteStore
	validator validators.Validator
	queue     *TaskQueue
	backoff   *BackoffPolicy
	status    *StatusBroadcaster
	clock     Clock

	// writeMu serializes local writes with the acknowledgement of a finished
	// attempt, so the pending count always comes from one ordered history.
	writeMu sync.Mutex

	mu        sync.Mutex
	state     models.SyncState
	online    bool
	inFlight  bool
	followUp  bool
	syncTask  *Task
	retryTask *Task
	closed    bool

	logger *logger.Logger
}

// NewSyncEngine wires the engine to its collaborators. Tasks are scheduled on
// queue; nothing runs until the queue is driven.
func NewSyncEngine(local store.LocalStorage, remote adapter.RemoteStore, queue *TaskQueue, backoff *BackoffPolicy, clock Clock, logger *logger.Logger) SyncEngine {
	if clock == nil {
		clock = SystemClock()
	}

	initial := models.SyncState{Status: models.StatusIdle}
	return &syncEngine{
		local:     local,
		remote:    remote,
		validator: validators.NewMutationValidator(),
		queue:     queue,
		backoff:   backoff,
		status:    NewStatusBroadcaster(initial),
		clock:     clock,
		state:     initial,
		online:    true,
		logger:    logger,
	}
}

func (e *syncEngine) Start(ctx context.Context) error {
	if err := e.Reload(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.PendingChangeCount > 0 && e.remote.Configured() {
		e.logger.Info().Int("pending", e.state.PendingChangeCount).Msg("unsynced changes found on start")
		e.state.Status = models.StatusSyncing
		e.scheduleNowLocked()
		e.publishLocked()
	}
	return nil
}

func (e *syncEngine) Reload(ctx context.Context) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	pending, err := e.local.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	last, err := e.local.LastSyncedAt(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.PendingChangeCount = pending
	e.state.LastSyncedAt = last
	if pending == 0 && !e.inFlight && e.state.Status != models.StatusOffline {
		e.state.Status = models.StatusIdle
		e.state.LastError = ""
	}
	e.publishLocked()
	return nil
}

func (e *syncEngine) RecordLocalChange(ctx context.Context, m models.Mutation) error {
	log := logger.FromContext(ctx)

	if err := e.validator.Validate(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMutation, err)
	}

	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	_, pending, err := e.local.ApplyMutation(ctx, m)
	if err != nil {
		log.Err(err).Str("func", "syncEngine.RecordLocalChange").Str("mutation_id", m.ID).Msg("local write failed")
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.PendingChangeCount = pending
	if e.closed {
		e.publishLocked()
		return nil
	}

	if e.state.Status != models.StatusOffline {
		e.state.Status = models.StatusSyncing
	}

	switch {
	case e.inFlight:
		// picked up right after the running attempt
		e.followUp = true
	case e.retryTask != nil:
		// rides along with the retry already waiting
	case !e.online:
		e.state.Status = models.StatusOffline
	default:
		e.state.Attempt = 0
		e.scheduleNowLocked()
	}

	e.publishLocked()
	return nil
}

func (e *syncEngine) AttemptSync(ctx context.Context) error {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrEngineClosed
	}
	if e.inFlight {
		e.followUp = true
		e.mu.Unlock()
		return nil
	}
	if e.state.PendingChangeCount == 0 {
		e.mu.Unlock()
		return nil
	}
	if !e.remote.Configured() {
		e.cancelRetryLocked()
		e.state.Status = models.StatusError
		e.state.LastError = ErrCloudNotConfigured.Error()
		e.publishLocked()
		e.mu.Unlock()
		return ErrCloudNotConfigured
	}

	e.inFlight = true
	e.followUp = false
	e.cancelRetryLocked()
	if e.state.Status != models.StatusOffline {
		e.state.Status = models.StatusSyncing
	}
	e.publishLocked()
	e.mu.Unlock()

	err := e.push(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false

	if err != nil {
		log.Err(err).Str("func", "syncEngine.AttemptSync").Int("attempt", e.state.Attempt+1).Msg("sync attempt failed")
		e.handleFailureLocked(err)
		e.publishLocked()
		return err
	}

	log.Info().Int("pending", e.state.PendingChangeCount).Msg("dataset synced")
	e.state.Attempt = 0
	e.state.LastError = ""
	e.state.NextRetry = nil

	if e.closed {
		e.state.Status = models.StatusIdle
	} else if e.state.PendingChangeCount > 0 || e.followUp {
		e.followUp = false
		if e.state.PendingChangeCount > 0 {
			e.state.Status = models.StatusSyncing
			e.scheduleNowLocked()
		} else {
			e.state.Status = models.StatusIdle
		}
	} else {
		e.state.Status = models.StatusIdle
	}

	e.publishLocked()
	return nil
}

// push sends the dataset and acknowledges exactly the mutations it carried.
func (e *syncEngine) push(ctx context.Context) error {
	dataset, ids, err := e.local.LoadSyncBatch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	if len(ids) == 0 {
		e.mu.Lock()
		e.state.PendingChangeCount = 0
		e.mu.Unlock()
		return nil
	}

	if err = e.remote.Update(ctx, dataset); err != nil {
		return mapAdapterError(err)
	}

	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	remaining, err := e.local.AckPending(ctx, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	now := e.clock.Now()
	if err = e.local.SetLastSyncedAt(ctx, now); err != nil {
		e.logger.Err(err).Str("func", "syncEngine.push").Msg("failed to persist last sync time")
	}

	e.mu.Lock()
	e.state.PendingChangeCount = remaining
	e.state.LastSyncedAt = &now
	e.mu.Unlock()
	return nil
}

func (e *syncEngine) handleFailureLocked(err error) {
	e.followUp = false

	kind := classifyFailure(err)
	if kind == failureCanceled {
		if e.state.Status == models.StatusSyncing && e.state.PendingChangeCount == 0 {
			e.state.Status = models.StatusIdle
		}
		return
	}

	e.state.Attempt++
	e.state.LastError = err.Error()

	switch kind {
	case failureNetwork:
		e.state.Status = models.StatusOffline
	case failureServer:
		e.state.Status = models.StatusError
	default:
		e.state.Status = models.StatusError
		e.state.NextRetry = nil
		e.logger.Warn().Err(err).Msg("sync failure is not retriable, waiting for user action")
		return
	}

	if !e.closed {
		e.scheduleRetryLocked(e.state.Attempt)
	}
}

func (e *syncEngine) ScheduleRetry(attempt int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.scheduleRetryLocked(attempt)
	e.publishLocked()
}

func (e *syncEngine) scheduleRetryLocked(attempt int) {
	e.cancelRetryLocked()

	if attempt > e.backoff.MaxRetries() {
		e.logger.Warn().Int("attempt", attempt).Int("max_retries", e.backoff.MaxRetries()).Msg("retries exhausted")
		e.state.Status = models.StatusError
		e.state.NextRetry = nil
		return
	}

	delay := e.backoff.Delay(attempt)
	e.retryTask = e.queue.Schedule(delay, taskRetry, e.runRetry)
	e.state.NextRetry = &models.RetryAttempt{
		AttemptNumber: attempt,
		ScheduledAt:   e.retryTask.Due(),
		Backoff:       delay,
	}
	e.logger.Debug().Int("attempt", attempt).Dur("backoff", delay).Msg("retry scheduled")
}

func (e *syncEngine) runRetry(ctx context.Context) {
	e.mu.Lock()
	e.retryTask = nil
	e.mu.Unlock()

	_ = e.AttemptSync(ctx)
}

func (e *syncEngine) runSync(ctx context.Context) {
	e.mu.Lock()
	e.syncTask = nil
	e.mu.Unlock()

	_ = e.AttemptSync(ctx)
}

func (e *syncEngine) TriggerSync() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.state.Attempt = 0
	e.cancelRetryLocked()
	if e.inFlight {
		e.followUp = true
		e.publishLocked()
		return
	}
	if e.state.PendingChangeCount == 0 {
		e.publishLocked()
		return
	}

	e.state.Status = models.StatusSyncing
	e.scheduleNowLocked()
	e.publishLocked()
}

func (e *syncEngine) SetConnectivity(online bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	was := e.online
	e.online = online
	if e.closed {
		return
	}

	if was == online {
		return
	}

	if !online {
		e.logger.Info().Msg("remote store unreachable")
		e.state.Status = models.StatusOffline
		e.publishLocked()
		return
	}

	e.logger.Info().Msg("remote store reachable again")
	e.state.Attempt = 0
	switch {
	case e.inFlight:
		e.followUp = true
		e.state.Status = models.StatusSyncing
	case e.state.PendingChangeCount > 0:
		e.cancelRetryLocked()
		e.state.Status = models.StatusSyncing
		e.scheduleNowLocked()
	default:
		e.state.Status = models.StatusIdle
	}
	e.publishLocked()
}

func (e *syncEngine) Status() models.SyncState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

func (e *syncEngine) Subscribe() (<-chan models.SyncState, func()) {
	return e.status.Subscribe()
}

func (e *syncEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.cancelRetryLocked()
	if e.syncTask != nil {
		e.queue.Cancel(e.syncTask)
		e.syncTask = nil
	}
	e.publishLocked()
	e.status.Close()
}

func (e *syncEngine) scheduleNowLocked() {
	if e.syncTask != nil || e.closed {
		return
	}
	e.syncTask = e.queue.Schedule(0, taskSync, e.runSync)
}

func (e *syncEngine) cancelRetryLocked() {
	if e.retryTask != nil {
		e.queue.Cancel(e.retryTask)
		e.retryTask = nil
	}
	e.state.NextRetry = nil
}

func (e *syncEngine) publishLocked() {
	e.status.Publish(e.state)
}
