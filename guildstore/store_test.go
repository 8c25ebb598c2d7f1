package guildstore

import (
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestbot/model"
)

// memBackend is an in-memory Backend for tests; it can be told to fail
// every save.
type memBackend struct {
	mu       sync.Mutex
	data     []byte
	saves    int
	failSave bool
}

func (b *memBackend) Load() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data, nil
}

func (b *memBackend) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failSave {
		return errors.New("disk full")
	}
	b.saves++
	b.data = append([]byte(nil), data...)
	return nil
}

func TestGetCreatesDefaultConfig(t *testing.T) {
	s, err := New(&memBackend{})
	require.NoError(t, err)

	cfg := s.Get("guild-1")
	assert.Equal(t, model.DefaultThreshold, cfg.Threshold)
	assert.Empty(t, cfg.SuggestionChannel)
	assert.Empty(t, cfg.Promoted)
}

func TestPutRoundTrip(t *testing.T) {
	backend := &memBackend{}
	s, err := New(backend)
	require.NoError(t, err)

	cfg := s.Get("guild-1")
	cfg.SuggestionChannel = "sug"
	cfg.ApprovalChannel = "app"
	cfg.FeaturedChannel = "feat"
	cfg.Threshold = 3
	s.Put("guild-1", cfg)

	got := s.Get("guild-1")
	assert.Equal(t, "sug", got.SuggestionChannel)
	assert.Equal(t, "app", got.ApprovalChannel)
	assert.Equal(t, "feat", got.FeaturedChannel)
	assert.Equal(t, 3, got.Threshold)

	// A second store on the same backend sees the persisted record.
	reloaded, err := New(backend)
	require.NoError(t, err)
	assert.Equal(t, got, reloaded.Get("guild-1"))
}

func TestPutMutatesOnlyGivenGuild(t *testing.T) {
	s, err := New(&memBackend{})
	require.NoError(t, err)

	a := s.Get("guild-a")
	a.Threshold = 2
	s.Put("guild-a", a)

	assert.Equal(t, 2, s.Get("guild-a").Threshold)
	assert.Equal(t, model.DefaultThreshold, s.Get("guild-b").Threshold)
}

func TestGetReturnsCopy(t *testing.T) {
	s, err := New(&memBackend{})
	require.NoError(t, err)

	cfg := s.Get("guild-1")
	cfg.Threshold = 99
	cfg.Promoted = append(cfg.Promoted, "rogue")

	assert.Equal(t, model.DefaultThreshold, s.Get("guild-1").Threshold)
	assert.False(t, s.HasPromoted("guild-1", "rogue"))
}

func TestTryPromoteExactlyOnce(t *testing.T) {
	s, err := New(&memBackend{})
	require.NoError(t, err)

	assert.True(t, s.TryPromote("guild-1", "msg-1"))
	assert.False(t, s.TryPromote("guild-1", "msg-1"))
	assert.True(t, s.HasPromoted("guild-1", "msg-1"))

	// A different message is unaffected.
	assert.True(t, s.TryPromote("guild-1", "msg-2"))
}

func TestPutKeepsPromotionsWonSinceGet(t *testing.T) {
	s, err := New(&memBackend{})
	require.NoError(t, err)

	// A command handler snapshots the record, then a reaction event
	// promotes a message before the handler writes back.
	cfg := s.Get("guild-1")
	require.True(t, s.TryPromote("guild-1", "msg-1"))

	cfg.Threshold = 3
	s.Put("guild-1", cfg)

	assert.True(t, s.HasPromoted("guild-1", "msg-1"))
	assert.False(t, s.TryPromote("guild-1", "msg-1"))
	assert.Equal(t, 3, s.Get("guild-1").Threshold)
}

func TestTryPromoteConcurrentSingleWinner(t *testing.T) {
	s, err := New(&memBackend{})
	require.NoError(t, err)

	const events = 32
	var wins int32
	var wg sync.WaitGroup
	wg.Add(events)
	for n := 0; n < events; n++ {
		go func() {
			defer wg.Done()
			if s.TryPromote("guild-1", "msg-1") {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins)
}

func TestTryPromotePersistsBeforeReturn(t *testing.T) {
	backend := &memBackend{}
	s, err := New(backend)
	require.NoError(t, err)

	require.True(t, s.TryPromote("guild-1", "msg-1"))

	reloaded, err := New(backend)
	require.NoError(t, err)
	assert.True(t, reloaded.HasPromoted("guild-1", "msg-1"))
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	backend := &memBackend{failSave: true}
	s, err := New(backend)
	require.NoError(t, err)

	assert.True(t, s.TryPromote("guild-1", "msg-1"))
	assert.False(t, s.TryPromote("guild-1", "msg-1"))

	cfg := s.Get("guild-1")
	cfg.Threshold = 7
	s.Put("guild-1", cfg)
	assert.Equal(t, 7, s.Get("guild-1").Threshold)
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "guilds.json")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	// Nothing saved yet.
	data, err := backend.Load()
	require.NoError(t, err)
	assert.Nil(t, data)

	s, err := New(backend)
	require.NoError(t, err)
	require.True(t, s.TryPromote("guild-1", "msg-1"))

	reloaded, err := New(backend)
	require.NoError(t, err)
	assert.True(t, reloaded.HasPromoted("guild-1", "msg-1"))
}
