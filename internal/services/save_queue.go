// internal/services/save_queue.go
package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/modgarage/garage-backend/internal/models"
)

const saveTimeout = 30 * time.Second

// SaveResult is delivered to every waiter once the store settles.
type SaveResult struct {
	Project *models.Project
	Err     error
}

// SaveQueue enforces the persistence policy: at most one outstanding save
// per session. A save requested while one is in flight is queued and
// coalesced last-write-wins; only the most recent pending state is sent
// once the in-flight call completes, so stale cart snapshots are never
// persisted out of order. All waiters observe the outcome of the save that
// finally ran.
type SaveQueue struct {
	projects *ProjectService

	mu     sync.Mutex
	states map[string]*saveState
}

type saveState struct {
	inFlight bool
	pending  *SaveRequest
	waiters  []chan SaveResult
}

func NewSaveQueue(projects *ProjectService) *SaveQueue {
	return &SaveQueue{
		projects: projects,
		states:   make(map[string]*saveState),
	}
}

// Enqueue submits a save for the given session key. The returned channel
// receives exactly one result: the outcome of the save that ultimately
// persisted this (or a newer) state.
func (q *SaveQueue) Enqueue(key string, req SaveRequest) <-chan SaveResult {
	ch := make(chan SaveResult, 1)

	q.mu.Lock()
	st, ok := q.states[key]
	if !ok {
		st = &saveState{}
		q.states[key] = st
	}
	st.waiters = append(st.waiters, ch)

	if st.inFlight {
		// Coalesce: drop any previously queued state, keep the newest.
		st.pending = &req
		q.mu.Unlock()
		return ch
	}

	st.inFlight = true
	q.mu.Unlock()

	go q.run(key, req)
	return ch
}

func (q *SaveQueue) run(key string, req SaveRequest) {
	for {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		project, err := q.projects.Save(ctx, req)
		cancel()

		if err != nil {
			logrus.WithError(err).WithField("session", key).Warn("Project save failed")
		}

		q.mu.Lock()
		st := q.states[key]
		if st.pending != nil {
			// A newer state arrived while saving; send it before settling.
			req = *st.pending
			st.pending = nil
			// Carry the created id forward so the follow-up save updates
			// instead of creating a duplicate project.
			if req.ProjectID == nil && err == nil && project != nil {
				req.ProjectID = &project.ID
			}
			q.mu.Unlock()
			continue
		}

		waiters := st.waiters
		st.waiters = nil
		st.inFlight = false
		q.mu.Unlock()

		for _, ch := range waiters {
			ch <- SaveResult{Project: project, Err: err}
		}
		return
	}
}
