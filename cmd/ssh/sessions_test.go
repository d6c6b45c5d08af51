package main

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsCancelAllAndWait(t *testing.T) {
	running := newSessions()

	id1, ctx1, done1 := running.start(context.Background())
	id2, ctx2, done2 := running.start(context.Background())
	assert.NotEqual(t, id1, id2)
	_, err := uuid.Parse(id1)
	require.NoError(t, err)
	assert.Equal(t, 2, running.count())

	assert.False(t, running.wait(10*time.Millisecond), "sessions still running")

	running.cancelAll()
	<-ctx1.Done()
	<-ctx2.Done()

	done1()
	done2()
	assert.True(t, running.wait(time.Second))
	assert.Zero(t, running.count())
}

func TestSessionsFollowParent(t *testing.T) {
	running := newSessions()
	parent, cancel := context.WithCancel(context.Background())

	_, ctx, done := running.start(parent)
	defer done()

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("session context did not follow its parent")
	}
}

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	w, h, err := s.getSize()
	require.NoError(t, err)
	assert.Equal(t, []int{80, 24}, []int{w, h})

	s.update(120, 40)
	w, h, _ = s.getSize()
	assert.Equal(t, []int{120, 40}, []int{w, h})
}
