// internal/services/save_queue_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modgarage/garage-backend/internal/models"
)

func saveReq(name string) SaveRequest {
	return SaveRequest{
		Name:      name,
		VehicleID: "swift-2023",
		State: models.CustomizationState{
			ColorFinish: models.DefaultFinish,
		},
	}
}

func TestSaveQueueSingleSave(t *testing.T) {
	repo := newFakeRepo()
	queue := NewSaveQueue(NewProjectService(repo))

	result := <-queue.Enqueue("session-1", saveReq("Build"))

	require.NoError(t, result.Err)
	assert.NotNil(t, result.Project)
	assert.Equal(t, 1, repo.creates)
}

func TestSaveQueueCoalescesWhileInFlight(t *testing.T) {
	repo := newFakeRepo()
	repo.block = make(chan struct{})
	queue := NewSaveQueue(NewProjectService(repo))

	// first save parks inside the repository
	first := queue.Enqueue("session-1", saveReq("v1"))

	// these arrive while the first is in flight; only the newest state may
	// be sent once it completes
	second := queue.Enqueue("session-1", saveReq("v2"))
	third := queue.Enqueue("session-1", saveReq("v3"))

	close(repo.block)

	results := []SaveResult{<-first, <-second, <-third}
	for _, r := range results {
		require.NoError(t, r.Err)
		require.NotNil(t, r.Project)
	}

	// one create for the in-flight save, one update for the coalesced
	// follow-up; v2 was never sent
	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 1, repo.updates)
	assert.Len(t, repo.projects, 1)
	for _, p := range repo.projects {
		assert.Equal(t, "v3", p.Name)
	}
}

func TestSaveQueueIndependentSessions(t *testing.T) {
	repo := newFakeRepo()
	queue := NewSaveQueue(NewProjectService(repo))

	a := queue.Enqueue("session-a", saveReq("A"))
	b := queue.Enqueue("session-b", saveReq("B"))

	ra, rb := <-a, <-b
	require.NoError(t, ra.Err)
	require.NoError(t, rb.Err)
	assert.NotEqual(t, ra.Project.ID, rb.Project.ID)
}

func TestSaveQueueFailureDelivered(t *testing.T) {
	repo := newFakeRepo()
	repo.failWith = assert.AnError
	queue := NewSaveQueue(NewProjectService(repo))

	result := <-queue.Enqueue("session-1", saveReq("Build"))
	assert.Error(t, result.Err)
	assert.Nil(t, result.Project)

	// a later retry goes through once the store recovers
	repo.mu.Lock()
	repo.failWith = nil
	repo.mu.Unlock()

	result = <-queue.Enqueue("session-1", saveReq("Build"))
	require.NoError(t, result.Err)
}
