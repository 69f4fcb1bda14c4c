package models

import "time"

// SyncStatus is the coarse state of the sync engine shown to the user.
type SyncStatus string

const (
	StatusIdle    SyncStatus = "idle"
	StatusSyncing SyncStatus = "syncing"
	StatusOffline SyncStatus = "offline"
	StatusError   SyncStatus = "error"
)

// RetryAttempt describes the automatic retry currently waiting in the task queue.
type RetryAttempt struct {
	AttemptNumber int           `json:"attempt_number"`
	ScheduledAt   time.Time     `json:"scheduled_at"`
	Backoff       time.Duration `json:"backoff"`
}

// SyncState is a point-in-time snapshot of the sync engine.
type SyncState struct {
	Status             SyncStatus    `json:"status"`
	LastSyncedAt       *time.Time    `json:"last_synced_at,omitempty"`
	PendingChangeCount int           `json:"pending_change_count"`
	Attempt            int           `json:"attempt"`
	LastError          string        `json:"last_error,omitempty"`
	NextRetry          *RetryAttempt `json:"next_retry,omitempty"`
}

// Clone returns a copy of s that shares no pointers with it.
func (s SyncState) Clone() SyncState {
	out := s
	if s.LastSyncedAt != nil {
		t := *s.LastSyncedAt
		out.LastSyncedAt = &t
	}
	if s.NextRetry != nil {
		r := *s.NextRetry
		out.NextRetry = &r
	}
	return out
}
