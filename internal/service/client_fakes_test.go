package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/fit-sync/internal/adapter"
	"github.com/MKhiriev/fit-sync/internal/store"
	"github.com/MKhiriev/fit-sync/models"
)

// fakeClock: ручные часы для детерминированных тестов очереди и бэкоффа
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// memLocalStore: in-memory реализация store.LocalStorage
type memLocalStore struct {
	mu         sync.Mutex
	snapshot   models.Dataset
	pending    []string
	settings   map[string]string
	lastSynced *time.Time

	applyErr error
	ackErr   error
}

func newMemLocalStore() *memLocalStore {
	return &memLocalStore{
		snapshot: models.NewDataset(),
		settings: make(map[string]string),
	}
}

func (s *memLocalStore) LoadSnapshot(context.Context) (models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone(), nil
}

func (s *memLocalStore) ApplyMutation(_ context.Context, m models.Mutation) (models.Dataset, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.applyErr != nil {
		return models.Dataset{}, 0, s.applyErr
	}
	for _, id := range s.pending {
		if id == m.ID {
			return models.Dataset{}, 0, store.ErrDuplicateMutation
		}
	}
	next, err := s.snapshot.Apply(m)
	if err != nil {
		return models.Dataset{}, 0, err
	}
	s.snapshot = next
	s.pending = append(s.pending, m.ID)
	return next.Clone(), len(s.pending), nil
}

func (s *memLocalStore) LoadSyncBatch(context.Context) (models.Dataset, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone(), append([]string(nil), s.pending...), nil
}

func (s *memLocalStore) PendingCount(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending), nil
}

func (s *memLocalStore) AckPending(_ context.Context, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ackErr != nil {
		return 0, s.ackErr
	}
	acked := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		acked[id] = struct{}{}
	}
	rest := s.pending[:0]
	for _, id := range s.pending {
		if _, ok := acked[id]; !ok {
			rest = append(rest, id)
		}
	}
	s.pending = rest
	return len(s.pending), nil
}

func (s *memLocalStore) ReplaceSnapshot(_ context.Context, d models.Dataset, dropPending bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !dropPending && len(s.pending) > 0 {
		return store.ErrPendingChanges
	}
	s.snapshot = d.Clone()
	s.pending = nil
	return nil
}

func (s *memLocalStore) GetSetting(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.settings[key]
	if !ok {
		return "", store.ErrSettingNotFound
	}
	return v, nil
}

func (s *memLocalStore) SetSetting(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = value
	return nil
}

func (s *memLocalStore) DeleteSetting(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.settings, key)
	return nil
}

func (s *memLocalStore) LastSyncedAt(context.Context) (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastSynced == nil {
		return nil, nil
	}
	t := *s.lastSynced
	return &t, nil
}

func (s *memLocalStore) SetLastSyncedAt(_ context.Context, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSynced = &at
	return nil
}

func (s *memLocalStore) pendingIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.pending...)
}

// fakeRemote: удалённое хранилище с очередью заранее заданных ошибок Update.
// nil в очереди означает успех; пустая очередь тоже успех.
type fakeRemote struct {
	mu         sync.Mutex
	apiKey     string
	binID      string
	updateErrs []error
	pushed     []models.Dataset
	onUpdate   func()
	pingErr    error
	pings      int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{apiKey: "$2a$10$abcdefghijklmnopqrstuv", binID: "65f1c0ffee65f1c0ffee65f1"}
}

func (r *fakeRemote) failNext(errs ...error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateErrs = append(r.updateErrs, errs...)
}

func (r *fakeRemote) updates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pushed)
}

func (r *fakeRemote) lastPushed() models.Dataset {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pushed[len(r.pushed)-1]
}

func (r *fakeRemote) SetCredentials(apiKey, binID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apiKey, r.binID = apiKey, binID
}

func (r *fakeRemote) BinID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.binID
}

func (r *fakeRemote) Configured() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apiKey != "" && r.binID != ""
}

func (r *fakeRemote) Create(context.Context, string, any) (models.BinMetadata, error) {
	return models.BinMetadata{}, fmt.Errorf("not used")
}

func (r *fakeRemote) Read(context.Context) (json.RawMessage, error) {
	return nil, fmt.Errorf("not used")
}

func (r *fakeRemote) Update(ctx context.Context, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	hook := r.onUpdate
	r.onUpdate = nil
	var err error
	if len(r.updateErrs) > 0 {
		err = r.updateErrs[0]
		r.updateErrs = r.updateErrs[1:]
	}
	if err == nil {
		r.pushed = append(r.pushed, doc.(models.Dataset))
	}
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return err
}

func (r *fakeRemote) Delete(context.Context) error { return nil }

func (r *fakeRemote) setPingErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pingErr = err
}

func (r *fakeRemote) pingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pings
}

func (r *fakeRemote) Ping(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pings++
	return r.pingErr
}

var (
	errOffline = fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrNetworkUnavailable)
	errServer  = fmt.Errorf("%w: 503 Service Unavailable", adapter.ErrRemoteServer)
	errAuth    = fmt.Errorf("%w: 401 Invalid X-Master-Key provided", adapter.ErrUnauthorized)
)
