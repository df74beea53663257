package database

import (
	"database/sql"

	"gdrequest/models"
)

// GetOrCreateUser returns the user document, creating an empty one on first
// access.
func GetOrCreateUser(db *sql.DB, userID string) (*models.User, error) {
	if _, err := db.Exec(`INSERT OR IGNORE INTO users (user_id) VALUES (?)`, userID); err != nil {
		return nil, err
	}

	user := &models.User{UserID: userID, LastSubmit: make(map[string]int64)}
	row := db.QueryRow(`SELECT last_deletion FROM users WHERE user_id = ?`, userID)
	if err := row.Scan(&user.LastDeletion); err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT guild_id, last_submit FROM user_last_submits WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var guildID string
		var lastSubmit int64
		if err := rows.Scan(&guildID, &lastSubmit); err != nil {
			return nil, err
		}
		user.LastSubmit[guildID] = lastSubmit
	}
	return user, rows.Err()
}

// SetLastSubmit records the time of a user's successful submission in a
// guild.
func SetLastSubmit(db *sql.DB, userID, guildID string, submittedAt int64) error {
	if _, err := db.Exec(`INSERT OR IGNORE INTO users (user_id) VALUES (?)`, userID); err != nil {
		return err
	}
	_, err := db.Exec(`INSERT INTO user_last_submits (user_id, guild_id, last_submit) VALUES (?, ?, ?)
		ON CONFLICT (user_id, guild_id) DO UPDATE SET last_submit = excluded.last_submit`,
		userID, guildID, submittedAt)
	return err
}

// SetLastDeletion records when the user last bulk-deleted their data.
func SetLastDeletion(db *sql.DB, userID string, deletedAt int64) error {
	_, err := db.Exec(`UPDATE users SET last_deletion = ? WHERE user_id = ?`, deletedAt, userID)
	return err
}
