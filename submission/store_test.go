package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft() *Draft {
	return NewDraft("u1", "g1", 128, "Stereo Madness", nil, openConfig())
}

func TestStorePutGet(t *testing.T) {
	store := NewStore(time.Minute)
	draft := testDraft()
	store.Put(draft)

	got, err := store.Get(DraftKey("g1", "u1"))
	require.NoError(t, err)
	assert.Same(t, draft, got)
}

func TestStoreMissing(t *testing.T) {
	store := NewStore(time.Minute)
	_, err := store.Get(DraftKey("g1", "nobody"))
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(30 * time.Millisecond)
	store.Put(testDraft())

	time.Sleep(80 * time.Millisecond)
	_, err := store.Get(DraftKey("g1", "u1"))
	assert.ErrorIs(t, err, ErrSessionExpired)

	// A write after eviction recreates the session.
	store.Put(testDraft())
	_, err = store.Get(DraftKey("g1", "u1"))
	assert.NoError(t, err)
}

func TestStoreRemove(t *testing.T) {
	store := NewStore(time.Minute)
	store.Put(testDraft())
	store.Remove(DraftKey("g1", "u1"))

	_, err := store.Get(DraftKey("g1", "u1"))
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestDraftRequirements(t *testing.T) {
	cfg := openConfig()
	cfg.Rules["classic.normal"].VideoRequired = true
	cfg.Rules["classic.normal"].NoteRequired = true

	draft := NewDraft("u1", "g1", 128, "Stereo Madness", nil, cfg)
	missing := draft.Requirements()
	assert.True(t, missing.Has(RequireVideo))
	assert.True(t, missing.Has(RequireNote))
	assert.True(t, missing.Has(RequireDifficulty))

	draft.SetVideo("dQw4w9WgXcQ")
	draft.SetNote("please send")
	draft.SetDifficulties([]int{5})
	assert.True(t, draft.Requirements().Empty())
}

func TestDraftToggleDemonClearsDifficulties(t *testing.T) {
	draft := testDraft()
	draft.SetDifficulties([]int{5})

	draft.ToggleDemon()
	assert.True(t, draft.Demon)
	assert.Empty(t, draft.Difficulties)
	assert.Equal(t, StatePickingDemonDifficulty, draft.State)

	draft.ToggleDemon()
	assert.False(t, draft.Demon)
	assert.Equal(t, StatePickingDifficulty, draft.State)
}
