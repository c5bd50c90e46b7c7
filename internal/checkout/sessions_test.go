package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_PutGetDelete(t *testing.T) {
	s := NewSessions(time.Hour)
	f := NewFlow(&mockInitiator{})

	s.Put("GEO-1", f)
	got, ok := s.Get("GEO-1")
	require.True(t, ok)
	assert.Same(t, f, got)

	s.Delete("GEO-1")
	_, ok = s.Get("GEO-1")
	assert.False(t, ok)
}

func TestSessions_GetExpiresOldFlows(t *testing.T) {
	s := NewSessions(time.Nanosecond)
	s.Put("GEO-1", NewFlow(&mockInitiator{}))

	time.Sleep(time.Millisecond)

	_, ok := s.Get("GEO-1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestSessions_Prune(t *testing.T) {
	s := NewSessions(time.Nanosecond)
	s.Put("GEO-1", NewFlow(&mockInitiator{}))
	s.Put("GEO-2", NewFlow(&mockInitiator{}))

	time.Sleep(time.Millisecond)

	assert.Equal(t, 2, s.Prune())
	assert.Equal(t, 0, s.Len())
}

func TestSessions_PruneKeepsLiveFlows(t *testing.T) {
	s := NewSessions(time.Hour)
	s.Put("GEO-1", NewFlow(&mockInitiator{}))

	assert.Equal(t, 0, s.Prune())
	_, ok := s.Get("GEO-1")
	assert.True(t, ok)
}
