package window

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdrequest/database"
	"gdrequest/models"
)

func openTestConfig(t *testing.T, guildID string) (*sql.DB, *models.GuildConfig) {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg, err := database.GetOrCreateGuildConfig(db, guildID)
	require.NoError(t, err)
	return db, cfg
}

type recordedNotify struct {
	channelID string
	content   string
}

func recordingNotifier(calls *[]recordedNotify) Notify {
	return func(channelID, content string) error {
		*calls = append(*calls, recordedNotify{channelID, content})
		return nil
	}
}

func TestOpenManualOnly(t *testing.T) {
	db, cfg := openTestConfig(t, "g1")

	conditions, err := Open(db, cfg, NoTimeBound, 0, "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"close manually"}, conditions)
	assert.Equal(t, NoTimeBound, cfg.OpenUntil)
	assert.False(t, cfg.CloseAnnounced)

	stored, err := database.GetOrCreateGuildConfig(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, NoTimeBound, stored.OpenUntil)
}

func TestOpenBothBounds(t *testing.T) {
	db, cfg := openTestConfig(t, "g1")
	closeAt := time.Now().UnixMilli() + 3600000

	conditions, err := Open(db, cfg, closeAt, 5, "u1", nil)
	require.NoError(t, err)
	assert.Len(t, conditions, 2)
	assert.Equal(t, 5, cfg.RemainRequests)
	assert.Equal(t, closeAt, cfg.OpenUntil)
}

func TestOpenAnnounces(t *testing.T) {
	db, cfg := openTestConfig(t, "g1")
	cfg.NotifyOpenChannelID = "announce"
	var calls []recordedNotify

	_, err := Open(db, cfg, NoTimeBound, 3, "u1", recordingNotifier(&calls))
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "announce", calls[0].channelID)
	assert.Contains(t, calls[0].content, "opened")
	assert.Contains(t, calls[0].content, "<@u1>")
}

func TestOpenClearsBrokenNotifyChannel(t *testing.T) {
	db, cfg := openTestConfig(t, "g1")
	cfg.NotifyOpenChannelID = "gone"

	_, err := Open(db, cfg, NoTimeBound, 0, "", func(string, string) error {
		return errors.New("no such channel")
	})
	require.NoError(t, err)
	assert.Equal(t, "", cfg.NotifyOpenChannelID)

	stored, err := database.GetOrCreateGuildConfig(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, "", stored.NotifyOpenChannelID)
}

func TestRecordSubmissionClosesOnZero(t *testing.T) {
	db, cfg := openTestConfig(t, "g1")
	_, err := Open(db, cfg, NoTimeBound, 3, "u1", nil)
	require.NoError(t, err)

	require.NoError(t, RecordSubmission(db, cfg, nil))
	require.NoError(t, RecordSubmission(db, cfg, nil))
	assert.Equal(t, 1, cfg.RemainRequests)
	assert.Equal(t, NoTimeBound, cfg.OpenUntil)

	require.NoError(t, RecordSubmission(db, cfg, nil))
	assert.Equal(t, int64(0), cfg.OpenUntil)
	assert.True(t, cfg.CloseAnnounced)
}

func TestRecordSubmissionWithoutCountBound(t *testing.T) {
	db, cfg := openTestConfig(t, "g1")
	_, err := Open(db, cfg, NoTimeBound, 0, "u1", nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, RecordSubmission(db, cfg, nil))
	}
	assert.Equal(t, NoTimeBound, cfg.OpenUntil)
}

func TestCloseAnnounces(t *testing.T) {
	db, cfg := openTestConfig(t, "g1")
	cfg.NotifyCloseChannelID = "announce"
	_, err := Open(db, cfg, NoTimeBound, 0, "u1", nil)
	require.NoError(t, err)

	var calls []recordedNotify
	require.NoError(t, Close(db, cfg, ReasonManual, "u2", recordingNotifier(&calls)))
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].content, "closed")
	assert.Equal(t, int64(0), cfg.OpenUntil)
	assert.Equal(t, 0, cfg.RemainRequests)
	assert.True(t, cfg.CloseAnnounced)
}

func TestSweepClosesOverdueOnly(t *testing.T) {
	db, overdue := openTestConfig(t, "g-overdue")
	now := time.Now()

	_, err := Open(db, overdue, now.UnixMilli()-1000, 0, "u1", nil)
	require.NoError(t, err)

	stillOpen, err := database.GetOrCreateGuildConfig(db, "g-open")
	require.NoError(t, err)
	_, err = Open(db, stillOpen, now.UnixMilli()+60000, 0, "u1", nil)
	require.NoError(t, err)

	require.NoError(t, Sweep(db, now, nil))

	got, err := database.GetOrCreateGuildConfig(db, "g-overdue")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.OpenUntil)
	assert.True(t, got.CloseAnnounced)

	got, err = database.GetOrCreateGuildConfig(db, "g-open")
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli()+60000, got.OpenUntil)
	assert.False(t, got.CloseAnnounced)

	// A second sweep finds nothing left to close.
	require.NoError(t, Sweep(db, now, nil))
}
