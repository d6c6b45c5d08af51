package main

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// sessions tracks running game sessions so shutdown can stop them and wait.
type sessions struct {
	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

func newSessions() *sessions {
	return &sessions{cancels: make(map[string]context.CancelFunc)}
}

// start registers a session. The returned context ends when parent ends or
// on cancelAll; done must be called when the session finishes.
func (s *sessions) start(parent context.Context) (id string, ctx context.Context, done func()) {
	id = uuid.NewString()
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	s.cancels[id] = cancel
	s.mu.Unlock()
	s.wg.Add(1)

	return id, ctx, func() {
		s.mu.Lock()
		delete(s.cancels, id)
		s.mu.Unlock()
		cancel()
		s.wg.Done()
	}
}

// count returns the number of running sessions.
func (s *sessions) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cancels)
}

// cancelAll asks every running session to stop.
func (s *sessions) cancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cancel := range s.cancels {
		cancel()
	}
}

// wait blocks until every session has finished or timeout passes.
// Returns false on timeout.
func (s *sessions) wait(timeout time.Duration) bool {
	finished := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return true
	case <-time.After(timeout):
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}
