package database

import (
	"database/sql"
	"fmt"

	"gdrequest/models"
)

var categoryRuleKeys = []string{"classic.normal", "classic.demon", "platformer.normal", "platformer.demon"}

const guildConfigColumns = `guild_id, gdps_mode, moderator_role_id, whitelist_role_id, blocked_role_id,
	cooldown_bypass_role_id, open_until, cooldown, remain_requests, close_announced,
	extra_question_enabled, extra_question_required, extra_question_text,
	notify_open_channel_id, notify_close_channel_id, sent_channel_id, reject_channel_id,
	message_type_disabled, message_request_closed, message_during_cooldown, migrate_check`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGuildConfig(scanner rowScanner) (*models.GuildConfig, error) {
	var cfg models.GuildConfig
	err := scanner.Scan(
		&cfg.GuildID, &cfg.GDPSMode, &cfg.ModeratorRoleID, &cfg.WhitelistRoleID, &cfg.BlockedRoleID,
		&cfg.CooldownBypassRoleID, &cfg.OpenUntil, &cfg.Cooldown, &cfg.RemainRequests, &cfg.CloseAnnounced,
		&cfg.ExtraQuestionEnabled, &cfg.ExtraQuestionRequired, &cfg.ExtraQuestionText,
		&cfg.NotifyOpenChannelID, &cfg.NotifyCloseChannelID, &cfg.SentChannelID, &cfg.RejectChannelID,
		&cfg.MessageTypeDisabled, &cfg.MessageRequestClosed, &cfg.MessageDuringCooldown, &cfg.MigrateCheck,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadCategoryRules(db *sql.DB, cfg *models.GuildConfig) error {
	rows, err := db.Query(`SELECT category, enabled, channel_id, video_required, note_required
		FROM category_rules WHERE guild_id = ?`, cfg.GuildID)
	if err != nil {
		return err
	}
	defer rows.Close()

	cfg.Rules = make(map[string]*models.CategoryRule)
	for rows.Next() {
		var category string
		var rule models.CategoryRule
		if err := rows.Scan(&category, &rule.Enabled, &rule.ChannelID, &rule.VideoRequired, &rule.NoteRequired); err != nil {
			return err
		}
		cfg.Rules[category] = &rule
	}
	return rows.Err()
}

// GetOrCreateGuildConfig returns the guild's configuration, creating the
// default one on first access.
func GetOrCreateGuildConfig(db *sql.DB, guildID string) (*models.GuildConfig, error) {
	cfg, err := getGuildConfig(db, guildID)
	if err == nil {
		return cfg, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO guild_configs
		(guild_id, message_type_disabled, message_request_closed, message_during_cooldown)
		VALUES (?, ?, ?, ?)`,
		guildID, models.DefaultMessageTypeDisabled, models.DefaultMessageRequestClosed, models.DefaultMessageDuringCooldown)
	if err != nil {
		return nil, fmt.Errorf("failed to create guild config: %w", err)
	}

	// Demon categories require a showcase video by default.
	for _, key := range categoryRuleKeys {
		videoRequired := key == "classic.demon" || key == "platformer.demon"
		_, err = db.Exec(`INSERT OR IGNORE INTO category_rules (guild_id, category, enabled, video_required)
			VALUES (?, ?, 1, ?)`, guildID, key, videoRequired)
		if err != nil {
			return nil, fmt.Errorf("failed to create category rule: %w", err)
		}
	}

	return getGuildConfig(db, guildID)
}

func getGuildConfig(db *sql.DB, guildID string) (*models.GuildConfig, error) {
	row := db.QueryRow(`SELECT `+guildConfigColumns+` FROM guild_configs WHERE guild_id = ?`, guildID)
	cfg, err := scanGuildConfig(row)
	if err != nil {
		return nil, err
	}
	if err := loadCategoryRules(db, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveGuildConfig writes the whole configuration document back, category
// rules included.
func SaveGuildConfig(db *sql.DB, cfg *models.GuildConfig) error {
	_, err := db.Exec(`UPDATE guild_configs SET
		gdps_mode = ?, moderator_role_id = ?, whitelist_role_id = ?, blocked_role_id = ?,
		cooldown_bypass_role_id = ?, open_until = ?, cooldown = ?, remain_requests = ?, close_announced = ?,
		extra_question_enabled = ?, extra_question_required = ?, extra_question_text = ?,
		notify_open_channel_id = ?, notify_close_channel_id = ?, sent_channel_id = ?, reject_channel_id = ?,
		message_type_disabled = ?, message_request_closed = ?, message_during_cooldown = ?, migrate_check = ?
		WHERE guild_id = ?`,
		cfg.GDPSMode, cfg.ModeratorRoleID, cfg.WhitelistRoleID, cfg.BlockedRoleID,
		cfg.CooldownBypassRoleID, cfg.OpenUntil, cfg.Cooldown, cfg.RemainRequests, cfg.CloseAnnounced,
		cfg.ExtraQuestionEnabled, cfg.ExtraQuestionRequired, cfg.ExtraQuestionText,
		cfg.NotifyOpenChannelID, cfg.NotifyCloseChannelID, cfg.SentChannelID, cfg.RejectChannelID,
		cfg.MessageTypeDisabled, cfg.MessageRequestClosed, cfg.MessageDuringCooldown, cfg.MigrateCheck,
		cfg.GuildID)
	if err != nil {
		return fmt.Errorf("failed to save guild config: %w", err)
	}

	for category, rule := range cfg.Rules {
		_, err := db.Exec(`INSERT INTO category_rules (guild_id, category, enabled, channel_id, video_required, note_required)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (guild_id, category) DO UPDATE SET
				enabled = excluded.enabled, channel_id = excluded.channel_id,
				video_required = excluded.video_required, note_required = excluded.note_required`,
			cfg.GuildID, category, rule.Enabled, rule.ChannelID, rule.VideoRequired, rule.NoteRequired)
		if err != nil {
			return fmt.Errorf("failed to save category rule %s: %w", category, err)
		}
	}
	return nil
}

// SaveWindowState persists only the submission-window fields. Used by the
// scheduler and the submit path so they don't clobber concurrent
// configuration edits.
func SaveWindowState(db *sql.DB, cfg *models.GuildConfig) error {
	_, err := db.Exec(`UPDATE guild_configs SET open_until = ?, remain_requests = ?, close_announced = ?,
		notify_open_channel_id = ?, notify_close_channel_id = ? WHERE guild_id = ?`,
		cfg.OpenUntil, cfg.RemainRequests, cfg.CloseAnnounced,
		cfg.NotifyOpenChannelID, cfg.NotifyCloseChannelID, cfg.GuildID)
	return err
}

// OverdueWindowConfigs returns every guild whose window is open, not yet
// announced closed, and past its time bound.
func OverdueWindowConfigs(db *sql.DB, nowMs int64) ([]*models.GuildConfig, error) {
	rows, err := db.Query(`SELECT `+guildConfigColumns+` FROM guild_configs
		WHERE close_announced = 0 AND open_until <= ?`, nowMs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*models.GuildConfig
	for rows.Next() {
		cfg, err := scanGuildConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}
