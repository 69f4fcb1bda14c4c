package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskQueue_RunDueOrder(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(clock, logger.Nop())

	var order []string
	record := func(name string) func(context.Context) {
		return func(context.Context) { order = append(order, name) }
	}

	q.Schedule(2*time.Second, "late", record("late"))
	q.Schedule(0, "first", record("first"))
	q.Schedule(0, "second", record("second"))
	q.Schedule(time.Second, "early", record("early"))
	require.Equal(t, 4, q.Len())

	due, ok := q.NextDue()
	require.True(t, ok)
	assert.Equal(t, clock.Now(), due)

	assert.Equal(t, 2, q.RunDue(context.Background(), clock.Now()))
	assert.Equal(t, []string{"first", "second"}, order)

	clock.Advance(2 * time.Second)
	assert.Equal(t, 2, q.RunDue(context.Background(), clock.Now()))
	assert.Equal(t, []string{"first", "second", "early", "late"}, order)

	_, ok = q.NextDue()
	assert.False(t, ok)
}

func TestTaskQueue_NegativeDelay(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(clock, logger.Nop())

	task := q.Schedule(-time.Minute, "now", func(context.Context) {})
	assert.Equal(t, clock.Now(), task.Due())
	assert.Equal(t, "now", task.Name())
}

func TestTaskQueue_Cancel(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(clock, logger.Nop())

	ran := false
	task := q.Schedule(time.Second, "retry", func(context.Context) { ran = true })
	other := q.Schedule(time.Second, "other", func(context.Context) {})

	assert.True(t, q.Cancel(task))
	assert.False(t, q.Cancel(task))
	assert.False(t, q.Cancel(nil))
	assert.Equal(t, 1, q.Len())

	clock.Advance(time.Second)
	assert.Equal(t, 1, q.RunDue(context.Background(), clock.Now()))
	assert.False(t, ran)
	assert.False(t, q.Cancel(other))
}

func TestTaskQueue_RunDueChained(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(clock, logger.Nop())

	count := 0
	var step func(context.Context)
	step = func(context.Context) {
		count++
		if count < 3 {
			q.Schedule(0, "step", step)
		}
	}
	q.Schedule(0, "step", step)

	assert.Equal(t, 3, q.RunDue(context.Background(), clock.Now()))
	assert.Equal(t, 0, q.Len())
}

func TestTaskQueue_RunDueStopsOnCancel(t *testing.T) {
	q := NewTaskQueue(newFakeClock(), logger.Nop())
	q.Schedule(0, "a", func(context.Context) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, 0, q.RunDue(ctx, time.Now().Add(time.Hour)))
	assert.Equal(t, 1, q.Len())
}

func TestTaskQueue_Run(t *testing.T) {
	q := NewTaskQueue(SystemClock(), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- q.Run(ctx) }()

	ran := make(chan string, 2)
	q.Schedule(20*time.Millisecond, "delayed", func(context.Context) { ran <- "delayed" })
	q.Schedule(0, "immediate", func(context.Context) { ran <- "immediate" })

	for _, want := range []string{"immediate", "delayed"} {
		select {
		case got := <-ran:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("task %q did not run", want)
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
