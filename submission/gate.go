package submission

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"gdrequest/level"
	"gdrequest/models"
)

// BlockReason identifies which eligibility check failed.
type BlockReason int

const (
	BlockMigrateNotice BlockReason = iota + 1
	BlockClosed
	BlockBlacklisted
	BlockNotWhitelisted
	BlockCooldown
	BlockCategoryDisabled
	BlockNoChannel
	BlockChannelInvalid
	BlockChannelPermission
)

// Block is a failed eligibility check together with its user-facing
// message.
type Block struct {
	Reason  BlockReason
	Message string
}

// Destination channel problems reported by a ChannelChecker.
var (
	ErrChannelNotFound = errors.New("channel does not exist")
	ErrChannelNotText  = errors.New("channel is not a text channel")
	ErrChannelNoSend   = errors.New("missing permission to send in channel")
)

// ChannelChecker verifies that the bot can post to a destination channel.
// Injected so the gate itself stays read-only and platform-free.
type ChannelChecker func(channelID string) error

const (
	msgMigrateNotice  = "This server's configuration was migrated from an older version of the bot. A moderator has to review it in /config before requests can be accepted again."
	msgBlacklisted    = "You are not allowed to submit level requests on this server."
	msgNotWhitelisted = "Only members with the whitelist role can submit level requests on this server."
	msgNoChannel      = "No request channel is configured for {type} requests."
	msgChannelInvalid = "The request channel configured for {type} requests does not exist or is not a text channel."
	msgChannelNoSend  = "The bot is missing permission to post in the request channel for {type} requests."
)

// CheckEligibility runs the ordered submission checks: migration notice,
// window, blacklist, whitelist, cooldown, then the category's destination.
// The first failure wins. cat may be nil when no target category is known
// yet (the initial submit modal). The gate only inspects state; it never
// mutates anything.
func CheckEligibility(cfg *models.GuildConfig, user *models.User, memberRoles []string, cat *level.Category, now time.Time, checkChannel ChannelChecker) *Block {
	if cfg.MigrateCheck {
		return &Block{Reason: BlockMigrateNotice, Message: msgMigrateNotice}
	}

	nowMs := now.UnixMilli()
	if nowMs >= cfg.OpenUntil {
		return &Block{Reason: BlockClosed, Message: cfg.MessageRequestClosed}
	}

	if cfg.BlockedRoleID != "" && slices.Contains(memberRoles, cfg.BlockedRoleID) {
		return &Block{Reason: BlockBlacklisted, Message: msgBlacklisted}
	}

	if cfg.WhitelistRoleID != "" && !slices.Contains(memberRoles, cfg.WhitelistRoleID) {
		return &Block{Reason: BlockNotWhitelisted, Message: msgNotWhitelisted}
	}

	if cfg.CooldownBypassRoleID == "" || !slices.Contains(memberRoles, cfg.CooldownBypassRoleID) {
		lastSubmit := user.LastSubmit[cfg.GuildID]
		if lastSubmit != 0 && nowMs-lastSubmit < cfg.Cooldown {
			endTime := fmt.Sprintf("<t:%d:R>", (lastSubmit+cfg.Cooldown)/1000)
			return &Block{
				Reason:  BlockCooldown,
				Message: strings.ReplaceAll(cfg.MessageDuringCooldown, "{endTime}", endTime),
			}
		}
	}

	if cat != nil {
		rule := cat.Rule(cfg)
		if rule == nil || !rule.Enabled {
			return &Block{
				Reason:  BlockCategoryDisabled,
				Message: strings.ReplaceAll(cfg.MessageTypeDisabled, "{type}", cat.Name),
			}
		}
		if rule.ChannelID == "" {
			return &Block{Reason: BlockNoChannel, Message: categoryMessage(msgNoChannel, cat)}
		}
		switch err := checkChannel(rule.ChannelID); {
		case err == nil:
		case errors.Is(err, ErrChannelNoSend):
			return &Block{Reason: BlockChannelPermission, Message: categoryMessage(msgChannelNoSend, cat)}
		default:
			return &Block{Reason: BlockChannelInvalid, Message: categoryMessage(msgChannelInvalid, cat)}
		}
	}

	return nil
}

func categoryMessage(template string, cat *level.Category) string {
	return strings.ReplaceAll(template, "{type}", cat.Name)
}
