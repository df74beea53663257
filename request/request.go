package request

import (
	"database/sql"
	"time"

	"gdrequest/database"
	"gdrequest/models"
	"gdrequest/submission"
)

// Create persists a confirmed draft as a new level request in StateReady
// with no reviews. The id is assigned by the store.
func Create(db *sql.DB, d *submission.Draft, now time.Time) (*models.Request, error) {
	req := &models.Request{
		UserID:       d.UserID,
		GuildID:      d.GuildID,
		LevelID:      d.LevelID,
		LevelName:    d.LevelName,
		Difficulties: d.Difficulties,
		Demon:        d.Demon,
		Platformer:   d.Platformer,
		VideoID:      d.VideoID,
		Note:         d.Note,
		GDPS:         d.GDPS,
		CheckFilter:  true,
		State:        models.StateReady,
		CreatedAt:    now.UnixMilli(),
	}
	if d.Level != nil {
		req.LevelDescription = d.Level.Description
		req.UploaderName = d.Level.UploaderName
		req.UploaderID = d.Level.UploaderID
	}
	if d.ExtraAnswer != "" {
		req.ExtraQuestion = d.Config.ExtraQuestionText
		req.ExtraAnswer = d.ExtraAnswer
	}

	id, err := database.InsertRequest(db, req)
	if err != nil {
		return nil, err
	}
	req.ID = id
	return req, nil
}

// AddReview records a reviewer's verdict; a later verdict from the same
// reviewer overwrites the earlier one. When the outcome carries a terminal
// state and the request is still Ready, the one-shot transition is
// attempted through the store's conditional update; won reports whether
// this call performed it. Losing the race is not an error: the request is
// re-read so the caller can re-render the actual current state. Reviews
// arriving after the transition are still recorded.
func AddReview(db *sql.DB, req *models.Request, reviewerID string, outcome *Outcome, note, messageURL string, now time.Time) (won bool, err error) {
	review := models.Review{
		ReviewerID: reviewerID,
		Outcome:    outcome.ID,
		ReviewedAt: now.UnixMilli(),
		Note:       note,
		MessageURL: messageURL,
	}
	if err := database.UpsertReview(db, req.ID, review); err != nil {
		return false, err
	}

	// Keep the in-memory aggregate in sync for re-rendering.
	kept := req.Reviews[:0]
	for _, existing := range req.Reviews {
		if existing.ReviewerID != reviewerID {
			kept = append(kept, existing)
		}
	}
	req.Reviews = append([]models.Review{review}, kept...)

	if outcome.Terminal() && req.State == models.StateReady {
		won, err = database.TransitionRequestState(db, req.ID, outcome.NextState)
		if err != nil {
			return false, err
		}
		if won {
			req.State = outcome.NextState
		} else if fresh, err := database.GetRequest(db, req.ID); err == nil && fresh != nil {
			req.State = fresh.State
		}
	}
	return won, nil
}
