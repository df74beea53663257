// Package window manages the per-guild submission window: a guild is
// either closed or open with an optional absolute close time and an
// optional remaining-submission count. Whichever bound trips first closes
// the window; a periodic sweep handles the time bound.
package window

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gdrequest/database"
	"gdrequest/models"
	"gdrequest/utils"
)

// NoTimeBound marks an open window without a close time.
const NoTimeBound = int64(math.MaxInt64)

// Reason says what closed a window.
type Reason string

const (
	ReasonTime   Reason = "time"
	ReasonCount  Reason = "count"
	ReasonManual Reason = "manual"
)

// ErrNothingToCloseOn is returned when a caller opens a window with neither
// bound and didn't explicitly ask for a manual-only window.
var ErrNothingToCloseOn = errors.New("no close bound given")

// Notify posts an announcement to a channel. nil disables announcements.
// A failed send marks the destination invalid; the stored channel id is
// cleared rather than failing the operation.
type Notify func(channelID, content string) error

// Open opens the guild's window with the given bounds. closeAt is unix
// milliseconds, NoTimeBound for none; closeAfter is the submission count,
// 0 for none. Both unset means the window only closes manually. Returns
// the human-readable close conditions for the confirmation message.
func Open(db *sql.DB, cfg *models.GuildConfig, closeAt int64, closeAfter int, triggeredBy string, notify Notify) ([]string, error) {
	var conditions []string
	if closeAfter > 0 {
		conditions = append(conditions, fmt.Sprintf("after %d requests", closeAfter))
	}
	if closeAt != NoTimeBound {
		conditions = append(conditions, fmt.Sprintf("at <t:%d:f>", closeAt/1000))
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "close manually")
	}

	cfg.OpenUntil = closeAt
	cfg.RemainRequests = closeAfter
	cfg.CloseAnnounced = false

	if notify != nil && cfg.NotifyOpenChannelID != "" {
		content := fmt.Sprintf("Request is opened now. Until: %s", strings.Join(conditions, " or "))
		if triggeredBy != "" {
			content += fmt.Sprintf("\n-# Triggered by: <@%s>", triggeredBy)
		}
		if err := notify(cfg.NotifyOpenChannelID, content); err != nil {
			cfg.NotifyOpenChannelID = ""
		}
	}

	if err := database.SaveWindowState(db, cfg); err != nil {
		return nil, err
	}
	return conditions, nil
}

// RecordSubmission consumes one remaining submission when a count bound is
// set. Hitting zero closes the window with ReasonCount.
func RecordSubmission(db *sql.DB, cfg *models.GuildConfig, notify Notify) error {
	if cfg.RemainRequests <= 0 {
		return nil
	}
	cfg.RemainRequests--
	if cfg.RemainRequests <= 0 {
		return Close(db, cfg, ReasonCount, "", notify)
	}
	return database.SaveWindowState(db, cfg)
}

// Close closes the guild's window immediately, announcing it when a close
// notification channel is configured.
func Close(db *sql.DB, cfg *models.GuildConfig, reason Reason, triggeredBy string, notify Notify) error {
	cfg.OpenUntil = 0
	cfg.RemainRequests = 0
	cfg.CloseAnnounced = true

	if notify != nil && cfg.NotifyCloseChannelID != "" {
		content := fmt.Sprintf("Request is closed now. Closed by: %s", closeContext(reason))
		if triggeredBy != "" {
			content += fmt.Sprintf("\n-# Triggered by: <@%s>", triggeredBy)
		}
		if err := notify(cfg.NotifyCloseChannelID, content); err != nil {
			cfg.NotifyCloseChannelID = ""
		}
	}

	return database.SaveWindowState(db, cfg)
}

func closeContext(reason Reason) string {
	switch reason {
	case ReasonTime:
		return "Request close time has arrived."
	case ReasonCount:
		return "The specified number of requests were received."
	default:
		return "Manually."
	}
}

// Sweep closes every guild whose open window is past its time bound. Run
// periodically; guilds already announced closed are skipped by the query.
func Sweep(db *sql.DB, now time.Time, notify Notify) error {
	configs, err := database.OverdueWindowConfigs(db, now.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to query overdue windows: %w", err)
	}

	for _, cfg := range configs {
		if err := Close(db, cfg, ReasonTime, "", notify); err != nil {
			utils.Error("window", "sweep", fmt.Sprintf("guild %s: %v", cfg.GuildID, err))
		}
	}
	return nil
}
