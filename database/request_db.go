package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"gdrequest/models"
)

const requestColumns = `id, user_id, guild_id, level_id, level_name, level_description, difficulties,
	demon, platformer, uploader_name, uploader_id, legacy_difficulty, video_id, note,
	extra_question, extra_answer, gdps, check_filter, state, created_at`

func scanRequest(scanner rowScanner) (*models.Request, error) {
	var req models.Request
	var difficulties string
	err := scanner.Scan(
		&req.ID, &req.UserID, &req.GuildID, &req.LevelID, &req.LevelName, &req.LevelDescription, &difficulties,
		&req.Demon, &req.Platformer, &req.UploaderName, &req.UploaderID, &req.LegacyDifficulty, &req.VideoID, &req.Note,
		&req.ExtraQuestion, &req.ExtraAnswer, &req.GDPS, &req.CheckFilter, &req.State, &req.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	req.Difficulties = decodeDifficulties(difficulties)
	return &req, nil
}

func encodeDifficulties(difficulties []int) string {
	parts := make([]string, len(difficulties))
	for i, difficulty := range difficulties {
		parts[i] = strconv.Itoa(difficulty)
	}
	return strings.Join(parts, ",")
}

func decodeDifficulties(encoded string) []int {
	if encoded == "" {
		return nil
	}
	var difficulties []int
	for _, part := range strings.Split(encoded, ",") {
		if value, err := strconv.Atoi(part); err == nil {
			difficulties = append(difficulties, value)
		}
	}
	return difficulties
}

// InsertRequest persists a new request and returns its store-assigned id.
func InsertRequest(db *sql.DB, req *models.Request) (int64, error) {
	result, err := db.Exec(`INSERT INTO requests (
		user_id, guild_id, level_id, level_name, level_description, difficulties,
		demon, platformer, uploader_name, uploader_id, legacy_difficulty, video_id, note,
		extra_question, extra_answer, gdps, check_filter, state, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.UserID, req.GuildID, req.LevelID, req.LevelName, req.LevelDescription, encodeDifficulties(req.Difficulties),
		req.Demon, req.Platformer, req.UploaderName, req.UploaderID, req.LegacyDifficulty, req.VideoID, req.Note,
		req.ExtraQuestion, req.ExtraAnswer, req.GDPS, req.CheckFilter, req.State, req.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert request: %w", err)
	}
	return result.LastInsertId()
}

// GetRequest retrieves a request and its reviews by id. Returns nil, nil
// when no such request exists.
func GetRequest(db *sql.DB, id int64) (*models.Request, error) {
	row := db.QueryRow(`SELECT `+requestColumns+` FROM requests WHERE id = ?`, id)
	req, err := scanRequest(row)
	if err != nil || req == nil {
		return req, err
	}
	if req.Reviews, err = getReviews(db, id); err != nil {
		return nil, err
	}
	return req, nil
}

// FindActiveRequest looks up an existing request for the same level in the
// same guild that still blocks resubmission.
func FindActiveRequest(db *sql.DB, guildID string, levelID int64) (*models.Request, error) {
	row := db.QueryRow(`SELECT `+requestColumns+` FROM requests
		WHERE guild_id = ? AND level_id = ? AND check_filter = 1 LIMIT 1`, guildID, levelID)
	req, err := scanRequest(row)
	if err != nil || req == nil {
		return req, err
	}
	if req.Reviews, err = getReviews(db, req.ID); err != nil {
		return nil, err
	}
	return req, nil
}

func getReviews(db *sql.DB, requestID int64) ([]models.Review, error) {
	rows, err := db.Query(`SELECT reviewer_id, outcome, reviewed_at, note, message_url
		FROM reviews WHERE request_id = ? ORDER BY reviewed_at DESC`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.ReviewerID, &review.Outcome, &review.ReviewedAt, &review.Note, &review.MessageURL); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// UpsertReview stores a reviewer's verdict; a later verdict from the same
// reviewer replaces the earlier one.
func UpsertReview(db *sql.DB, requestID int64, review models.Review) error {
	_, err := db.Exec(`INSERT INTO reviews (request_id, reviewer_id, outcome, reviewed_at, note, message_url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (request_id, reviewer_id) DO UPDATE SET
			outcome = excluded.outcome, reviewed_at = excluded.reviewed_at,
			note = excluded.note, message_url = excluded.message_url`,
		requestID, review.ReviewerID, review.Outcome, review.ReviewedAt, review.Note, review.MessageURL)
	return err
}

// TransitionRequestState moves a request out of StateReady. The update is
// conditional on the stored state still being Ready, so two racing
// reviewers cannot both perform the transition; won reports whether this
// call did.
func TransitionRequestState(db *sql.DB, requestID int64, newState int) (won bool, err error) {
	result, err := db.Exec(`UPDATE requests SET state = ? WHERE id = ? AND state = ?`,
		newState, requestID, models.StateReady)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AllowResubmit clears the duplicate-submission filter so the level id can
// be submitted again later.
func AllowResubmit(db *sql.DB, requestID int64) error {
	_, err := db.Exec(`UPDATE requests SET check_filter = 0 WHERE id = ?`, requestID)
	return err
}

// DeleteUserRequests removes every request a user has ever submitted and
// returns how many were deleted.
func DeleteUserRequests(db *sql.DB, userID string) (int64, error) {
	_, err := db.Exec(`DELETE FROM reviews WHERE request_id IN (SELECT id FROM requests WHERE user_id = ?)`, userID)
	if err != nil {
		return 0, err
	}
	result, err := db.Exec(`DELETE FROM requests WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
