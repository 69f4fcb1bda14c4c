package service

import (
	"testing"

	"github.com/MKhiriev/fit-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBroadcaster_LatestWins(t *testing.T) {
	b := NewStatusBroadcaster(models.SyncState{Status: models.StatusIdle})

	ch, unsubscribe := b.Subscribe()
	defer unsubscribe()

	b.Publish(models.SyncState{Status: models.StatusSyncing, PendingChangeCount: 1})
	b.Publish(models.SyncState{Status: models.StatusOffline, PendingChangeCount: 2})

	got := <-ch
	assert.Equal(t, models.StatusOffline, got.Status)
	assert.Equal(t, 2, got.PendingChangeCount)
	assert.Empty(t, ch)
	assert.Equal(t, models.StatusOffline, b.Last().Status)
}

func TestStatusBroadcaster_SubscribeIsPrimed(t *testing.T) {
	b := NewStatusBroadcaster(models.SyncState{Status: models.StatusError, LastError: "boom"})

	ch, unsubscribe := b.Subscribe()
	got := <-ch
	assert.Equal(t, models.StatusError, got.Status)
	assert.Equal(t, "boom", got.LastError)

	unsubscribe()
	unsubscribe()
	_, open := <-ch
	assert.False(t, open)

	// после отписки Publish не паникует
	b.Publish(models.SyncState{Status: models.StatusIdle})
}

func TestStatusBroadcaster_NoSharedPointers(t *testing.T) {
	b := NewStatusBroadcaster(models.SyncState{})
	ch, unsubscribe := b.Subscribe()
	defer unsubscribe()
	<-ch

	retry := &models.RetryAttempt{AttemptNumber: 1}
	b.Publish(models.SyncState{Status: models.StatusOffline, NextRetry: retry})
	retry.AttemptNumber = 7

	got := <-ch
	require.NotNil(t, got.NextRetry)
	assert.Equal(t, 1, got.NextRetry.AttemptNumber)
}

func TestStatusBroadcaster_Close(t *testing.T) {
	b := NewStatusBroadcaster(models.SyncState{})
	ch, _ := b.Subscribe()
	<-ch

	b.Close()
	b.Close()
	_, open := <-ch
	assert.False(t, open)

	late, unsubscribe := b.Subscribe()
	unsubscribe()
	_, open = <-late
	assert.False(t, open)
}
