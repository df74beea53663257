package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdrequest/level"
	"gdrequest/models"
	"gdrequest/window"
)

func openConfig() *models.GuildConfig {
	return &models.GuildConfig{
		GuildID:               "g1",
		OpenUntil:             window.NoTimeBound,
		Cooldown:              60 * 60 * 1000,
		MessageRequestClosed:  models.DefaultMessageRequestClosed,
		MessageDuringCooldown: models.DefaultMessageDuringCooldown,
		MessageTypeDisabled:   models.DefaultMessageTypeDisabled,
		Rules: map[string]*models.CategoryRule{
			"classic.normal": {Enabled: true, ChannelID: "c1"},
		},
	}
}

func okChannel(string) error { return nil }

func TestCheckEligibilityAllows(t *testing.T) {
	cfg := openConfig()
	user := &models.User{UserID: "u1", LastSubmit: map[string]int64{}}

	block := CheckEligibility(cfg, user, nil, level.Classic, time.Now(), okChannel)
	assert.Nil(t, block)
}

func TestCheckEligibilityMigrateNoticeFirst(t *testing.T) {
	cfg := openConfig()
	cfg.MigrateCheck = true
	cfg.OpenUntil = 0 // would also block, but the migration notice wins
	user := &models.User{UserID: "u1", LastSubmit: map[string]int64{}}

	block := CheckEligibility(cfg, user, nil, level.Classic, time.Now(), okChannel)
	require.NotNil(t, block)
	assert.Equal(t, BlockMigrateNotice, block.Reason)
}

func TestCheckEligibilityClosed(t *testing.T) {
	cfg := openConfig()
	user := &models.User{UserID: "u1", LastSubmit: map[string]int64{}}
	now := time.Now()

	cfg.OpenUntil = 0
	block := CheckEligibility(cfg, user, nil, nil, now, okChannel)
	require.NotNil(t, block)
	assert.Equal(t, BlockClosed, block.Reason)
	assert.Equal(t, cfg.MessageRequestClosed, block.Message)

	// The close instant itself is already closed.
	cfg.OpenUntil = now.UnixMilli()
	block = CheckEligibility(cfg, user, nil, nil, now, okChannel)
	require.NotNil(t, block)
	assert.Equal(t, BlockClosed, block.Reason)

	cfg.OpenUntil = now.UnixMilli() + 1
	assert.Nil(t, CheckEligibility(cfg, user, nil, nil, now, okChannel))
}

func TestCheckEligibilityRoles(t *testing.T) {
	cfg := openConfig()
	cfg.BlockedRoleID = "blocked"
	cfg.WhitelistRoleID = "allowed"
	user := &models.User{UserID: "u1", LastSubmit: map[string]int64{}}
	now := time.Now()

	block := CheckEligibility(cfg, user, []string{"blocked", "allowed"}, nil, now, okChannel)
	require.NotNil(t, block)
	assert.Equal(t, BlockBlacklisted, block.Reason)

	block = CheckEligibility(cfg, user, []string{"other"}, nil, now, okChannel)
	require.NotNil(t, block)
	assert.Equal(t, BlockNotWhitelisted, block.Reason)

	assert.Nil(t, CheckEligibility(cfg, user, []string{"allowed"}, nil, now, okChannel))
}

func TestCheckEligibilityCooldown(t *testing.T) {
	cfg := openConfig()
	now := time.Now()
	nowMs := now.UnixMilli()

	// One millisecond short of the cooldown still blocks.
	user := &models.User{UserID: "u1", LastSubmit: map[string]int64{"g1": nowMs - cfg.Cooldown + 1}}
	block := CheckEligibility(cfg, user, nil, nil, now, okChannel)
	require.NotNil(t, block)
	assert.Equal(t, BlockCooldown, block.Reason)
	assert.NotContains(t, block.Message, "{endTime}")

	// Exactly the cooldown has elapsed.
	user.LastSubmit["g1"] = nowMs - cfg.Cooldown
	assert.Nil(t, CheckEligibility(cfg, user, nil, nil, now, okChannel))

	// The bypass role skips the check entirely.
	cfg.CooldownBypassRoleID = "vip"
	user.LastSubmit["g1"] = nowMs
	assert.Nil(t, CheckEligibility(cfg, user, []string{"vip"}, nil, now, okChannel))

	// A user who never submitted is never on cooldown.
	fresh := &models.User{UserID: "u2", LastSubmit: map[string]int64{}}
	cfg.CooldownBypassRoleID = ""
	assert.Nil(t, CheckEligibility(cfg, fresh, nil, nil, now, okChannel))
}

func TestCheckEligibilityCategory(t *testing.T) {
	cfg := openConfig()
	user := &models.User{UserID: "u1", LastSubmit: map[string]int64{}}
	now := time.Now()

	block := CheckEligibility(cfg, user, nil, level.ClassicDemon, now, okChannel)
	require.NotNil(t, block)
	assert.Equal(t, BlockCategoryDisabled, block.Reason)
	assert.Contains(t, block.Message, level.ClassicDemon.Name)

	cfg.Rules["classic.normal"].ChannelID = ""
	block = CheckEligibility(cfg, user, nil, level.Classic, now, okChannel)
	require.NotNil(t, block)
	assert.Equal(t, BlockNoChannel, block.Reason)

	cfg.Rules["classic.normal"].ChannelID = "c1"
	block = CheckEligibility(cfg, user, nil, level.Classic, now, func(string) error { return ErrChannelNotText })
	require.NotNil(t, block)
	assert.Equal(t, BlockChannelInvalid, block.Reason)

	block = CheckEligibility(cfg, user, nil, level.Classic, now, func(string) error { return ErrChannelNoSend })
	require.NotNil(t, block)
	assert.Equal(t, BlockChannelPermission, block.Reason)
}
