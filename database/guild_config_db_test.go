package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdrequest/models"
)

func TestGetOrCreateGuildConfigDefaults(t *testing.T) {
	db := openTestDB(t)

	cfg, err := GetOrCreateGuildConfig(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", cfg.GuildID)
	assert.Equal(t, int64(0), cfg.OpenUntil)
	assert.True(t, cfg.CloseAnnounced)
	assert.Equal(t, models.DefaultMessageRequestClosed, cfg.MessageRequestClosed)

	require.Len(t, cfg.Rules, 4)
	assert.True(t, cfg.Rules["classic.normal"].Enabled)
	assert.False(t, cfg.Rules["classic.normal"].VideoRequired)
	assert.True(t, cfg.Rules["classic.demon"].VideoRequired)
	assert.True(t, cfg.Rules["platformer.demon"].VideoRequired)

	// A second call returns the stored document, not a fresh default.
	cfg.ModeratorRoleID = "mods"
	require.NoError(t, SaveGuildConfig(db, cfg))
	again, err := GetOrCreateGuildConfig(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, "mods", again.ModeratorRoleID)
}

func TestSaveGuildConfigRoundTrip(t *testing.T) {
	db := openTestDB(t)

	cfg, err := GetOrCreateGuildConfig(db, "g1")
	require.NoError(t, err)

	cfg.GDPSMode = true
	cfg.Cooldown = 3600000
	cfg.ExtraQuestionEnabled = true
	cfg.ExtraQuestionText = "Why this level?"
	cfg.SentChannelID = "c-sent"
	cfg.Rules["classic.normal"].ChannelID = "c1"
	cfg.Rules["classic.normal"].NoteRequired = true
	require.NoError(t, SaveGuildConfig(db, cfg))

	got, err := GetOrCreateGuildConfig(db, "g1")
	require.NoError(t, err)
	assert.True(t, got.GDPSMode)
	assert.Equal(t, int64(3600000), got.Cooldown)
	assert.Equal(t, "Why this level?", got.ExtraQuestionText)
	assert.Equal(t, "c-sent", got.SentChannelID)
	assert.Equal(t, "c1", got.Rules["classic.normal"].ChannelID)
	assert.True(t, got.Rules["classic.normal"].NoteRequired)
}

func TestSaveWindowStateLeavesConfigAlone(t *testing.T) {
	db := openTestDB(t)

	cfg, err := GetOrCreateGuildConfig(db, "g1")
	require.NoError(t, err)
	cfg.ModeratorRoleID = "mods"
	require.NoError(t, SaveGuildConfig(db, cfg))

	cfg.ModeratorRoleID = "clobbered"
	cfg.OpenUntil = 12345
	cfg.RemainRequests = 3
	cfg.CloseAnnounced = false
	require.NoError(t, SaveWindowState(db, cfg))

	got, err := GetOrCreateGuildConfig(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), got.OpenUntil)
	assert.Equal(t, 3, got.RemainRequests)
	assert.False(t, got.CloseAnnounced)
	assert.Equal(t, "mods", got.ModeratorRoleID)
}

func TestOverdueWindowConfigs(t *testing.T) {
	db := openTestDB(t)

	overdue, err := GetOrCreateGuildConfig(db, "g-overdue")
	require.NoError(t, err)
	overdue.OpenUntil = 1000
	overdue.CloseAnnounced = false
	require.NoError(t, SaveWindowState(db, overdue))

	open, err := GetOrCreateGuildConfig(db, "g-open")
	require.NoError(t, err)
	open.OpenUntil = 5000
	open.CloseAnnounced = false
	require.NoError(t, SaveWindowState(db, open))

	// Freshly created guilds are closed and announced; they never show up.
	_, err = GetOrCreateGuildConfig(db, "g-idle")
	require.NoError(t, err)

	configs, err := OverdueWindowConfigs(db, 2000)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "g-overdue", configs[0].GuildID)
}
