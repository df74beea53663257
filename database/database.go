package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // Import the SQLite3 driver
)

// InitDB opens the SQLite database at dbPath, creating the file and the
// schema if needed.
func InitDB(dbPath string) (*sql.DB, error) {
	// Ensure the directory for the database file exists.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Println("Successfully connected to the database at", dbPath)
	return db, nil
}

func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS guild_configs (
			guild_id TEXT PRIMARY KEY,
			gdps_mode INTEGER NOT NULL DEFAULT 0,
			moderator_role_id TEXT NOT NULL DEFAULT '',
			whitelist_role_id TEXT NOT NULL DEFAULT '',
			blocked_role_id TEXT NOT NULL DEFAULT '',
			cooldown_bypass_role_id TEXT NOT NULL DEFAULT '',
			open_until INTEGER NOT NULL DEFAULT 0,
			cooldown INTEGER NOT NULL DEFAULT 0,
			remain_requests INTEGER NOT NULL DEFAULT 0,
			close_announced INTEGER NOT NULL DEFAULT 1,
			extra_question_enabled INTEGER NOT NULL DEFAULT 0,
			extra_question_required INTEGER NOT NULL DEFAULT 0,
			extra_question_text TEXT NOT NULL DEFAULT '',
			notify_open_channel_id TEXT NOT NULL DEFAULT '',
			notify_close_channel_id TEXT NOT NULL DEFAULT '',
			sent_channel_id TEXT NOT NULL DEFAULT '',
			reject_channel_id TEXT NOT NULL DEFAULT '',
			message_type_disabled TEXT NOT NULL,
			message_request_closed TEXT NOT NULL,
			message_during_cooldown TEXT NOT NULL,
			migrate_check INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS category_rules (
			guild_id TEXT NOT NULL,
			category TEXT NOT NULL,
			enabled INTEGER NOT NULL DEFAULT 1,
			channel_id TEXT NOT NULL DEFAULT '',
			video_required INTEGER NOT NULL DEFAULT 0,
			note_required INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (guild_id, category)
		);`,
		`CREATE TABLE IF NOT EXISTS requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			guild_id TEXT NOT NULL,
			level_id INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			level_description TEXT NOT NULL DEFAULT '',
			difficulties TEXT NOT NULL DEFAULT '',
			demon INTEGER NOT NULL DEFAULT 0,
			platformer INTEGER NOT NULL DEFAULT 0,
			uploader_name TEXT NOT NULL DEFAULT '',
			uploader_id INTEGER NOT NULL DEFAULT 0,
			legacy_difficulty TEXT NOT NULL DEFAULT '',
			video_id TEXT NOT NULL DEFAULT '',
			note TEXT NOT NULL DEFAULT '',
			extra_question TEXT NOT NULL DEFAULT '',
			extra_answer TEXT NOT NULL DEFAULT '',
			gdps INTEGER NOT NULL DEFAULT 0,
			check_filter INTEGER NOT NULL DEFAULT 1,
			state INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_requests_guild_level ON requests (guild_id, level_id);`,
		`CREATE TABLE IF NOT EXISTS reviews (
			request_id INTEGER NOT NULL,
			reviewer_id TEXT NOT NULL,
			outcome INTEGER NOT NULL,
			reviewed_at INTEGER NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			message_url TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (request_id, reviewer_id)
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			last_deletion INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS user_last_submits (
			user_id TEXT NOT NULL,
			guild_id TEXT NOT NULL,
			last_submit INTEGER NOT NULL,
			PRIMARY KEY (user_id, guild_id)
		);`,
	}

	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return err
		}
	}
	return nil
}
