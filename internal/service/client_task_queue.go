package service

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/fit-sync/internal/logger"
)

// Task is an entry of the [TaskQueue].
type Task struct {
	name  string
	due   time.Time
	seq   uint64
	fn    func(ctx context.Context)
	index int
}

// Name returns the label the task was scheduled with.
func (t *Task) Name() string { return t.name }

// Due returns the clock time at which the task becomes runnable.
func (t *Task) Due() time.Time { return t.due }

// taskHeap orders tasks by due time, then by scheduling order.
type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	t := x.(*Task)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// TaskQueue is a queue of deferred tasks executed one at a time.
//
// Tasks are scheduled relative to the queue clock and can be cancelled until
// they start. Run is the only consumer in production; tests call RunDue with
// a fake clock instead.
type TaskQueue struct {
	clock Clock

	mu    sync.Mutex
	tasks taskHeap
	seq   uint64
	wake  chan struct{}

	logger *logger.Logger
}

// NewTaskQueue creates an empty queue that reads time from clock.
func NewTaskQueue(clock Clock, logger *logger.Logger) *TaskQueue {
	if clock == nil {
		clock = SystemClock()
	}
	return &TaskQueue{
		clock:  clock,
		wake:   make(chan struct{}, 1),
		logger: logger,
	}
}

// Schedule queues fn to run after delay. A non-positive delay means as soon
// as possible, after the tasks already due.
func (q *TaskQueue) Schedule(delay time.Duration, name string, fn func(ctx context.Context)) *Task {
	if delay < 0 {
		delay = 0
	}

	q.mu.Lock()
	q.seq++
	t := &Task{
		name: name,
		due:  q.clock.Now().Add(delay),
		seq:  q.seq,
		fn:   fn,
	}
	heap.Push(&q.tasks, t)
	q.mu.Unlock()

	q.notify()
	return t
}

// Cancel removes t from the queue. It reports false when t already ran or
// was cancelled before.
func (q *TaskQueue) Cancel(t *Task) bool {
	if t == nil {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if t.index < 0 || t.index >= len(q.tasks) || q.tasks[t.index] != t {
		return false
	}
	heap.Remove(&q.tasks, t.index)
	return true
}

// Len returns the number of scheduled tasks that have not started yet.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// NextDue returns the due time of the earliest task.
func (q *TaskQueue) NextDue() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	return q.tasks[0].due, true
}

// RunDue runs, in order, every task due at or before now, including tasks
// those tasks schedule for no later than now. It returns how many ran.
func (q *TaskQueue) RunDue(ctx context.Context, now time.Time) int {
	ran := 0
	for ctx.Err() == nil {
		t := q.popDue(now)
		if t == nil {
			break
		}
		q.logger.Debug().Str("task", t.name).Msg("running task")
		t.fn(ctx)
		ran++
	}
	return ran
}

// Run executes due tasks until ctx is cancelled.
func (q *TaskQueue) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		q.RunDue(ctx, q.clock.Now())

		wait := time.Hour
		if due, ok := q.NextDue(); ok {
			wait = due.Sub(q.clock.Now())
			if wait < 0 {
				wait = 0
			}
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return nil
		case <-q.wake:
		case <-timer.C:
		}
	}
}

func (q *TaskQueue) popDue(now time.Time) *Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 || q.tasks[0].due.After(now) {
		return nil
	}
	return heap.Pop(&q.tasks).(*Task)
}

func (q *TaskQueue) notify() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
