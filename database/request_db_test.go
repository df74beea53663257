package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdrequest/models"
)

func insertTestRequest(t *testing.T, db *sql.DB, userID, guildID string, levelID int64) *models.Request {
	t.Helper()
	req := &models.Request{
		UserID:       userID,
		GuildID:      guildID,
		LevelID:      levelID,
		LevelName:    "Test Level",
		Difficulties: []int{5, 8},
		CheckFilter:  true,
		State:        models.StateReady,
		CreatedAt:    1700000000000,
	}
	id, err := InsertRequest(db, req)
	require.NoError(t, err)
	req.ID = id
	return req
}

func TestInsertAndGetRequest(t *testing.T) {
	db := openTestDB(t)

	req := insertTestRequest(t, db, "u1", "g1", 128)
	assert.Greater(t, req.ID, int64(0))

	got, err := GetRequest(db, req.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, []int{5, 8}, got.Difficulties)
	assert.Equal(t, models.StateReady, got.State)
	assert.Empty(t, got.Reviews)

	// Ids are assigned monotonically by the store.
	second := insertTestRequest(t, db, "u1", "g1", 129)
	assert.Greater(t, second.ID, req.ID)

	missing, err := GetRequest(db, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindActiveRequest(t *testing.T) {
	db := openTestDB(t)
	req := insertTestRequest(t, db, "u1", "g1", 128)

	found, err := FindActiveRequest(db, "g1", 128)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, req.ID, found.ID)

	// Same level in another guild doesn't collide.
	found, err = FindActiveRequest(db, "g2", 128)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Clearing the filter frees the level id for resubmission.
	require.NoError(t, AllowResubmit(db, req.ID))
	found, err = FindActiveRequest(db, "g1", 128)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUpsertReviewLastWriteWins(t *testing.T) {
	db := openTestDB(t)
	req := insertTestRequest(t, db, "u1", "g1", 128)

	require.NoError(t, UpsertReview(db, req.ID, models.Review{ReviewerID: "mod1", Outcome: 1, ReviewedAt: 100}))
	require.NoError(t, UpsertReview(db, req.ID, models.Review{ReviewerID: "mod2", Outcome: -1, ReviewedAt: 200}))
	require.NoError(t, UpsertReview(db, req.ID, models.Review{ReviewerID: "mod1", Outcome: 3, ReviewedAt: 300, Note: "changed my mind"}))

	got, err := GetRequest(db, req.ID)
	require.NoError(t, err)
	require.Len(t, got.Reviews, 2)
	// Newest first; mod1 keeps only the later verdict.
	assert.Equal(t, "mod1", got.Reviews[0].ReviewerID)
	assert.Equal(t, 3, got.Reviews[0].Outcome)
	assert.Equal(t, "changed my mind", got.Reviews[0].Note)
	assert.Equal(t, "mod2", got.Reviews[1].ReviewerID)
}

func TestTransitionRequestStateOnce(t *testing.T) {
	db := openTestDB(t)
	req := insertTestRequest(t, db, "u1", "g1", 128)

	won, err := TransitionRequestState(db, req.ID, models.StateRated)
	require.NoError(t, err)
	assert.True(t, won)

	// The second transition loses; the stored state is untouched.
	won, err = TransitionRequestState(db, req.ID, models.StateStolen)
	require.NoError(t, err)
	assert.False(t, won)

	got, err := GetRequest(db, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateRated, got.State)
}

func TestDeleteUserRequests(t *testing.T) {
	db := openTestDB(t)
	mine1 := insertTestRequest(t, db, "u1", "g1", 128)
	insertTestRequest(t, db, "u1", "g2", 129)
	other := insertTestRequest(t, db, "u2", "g1", 130)
	require.NoError(t, UpsertReview(db, mine1.ID, models.Review{ReviewerID: "mod1", Outcome: 1, ReviewedAt: 100}))

	count, err := DeleteUserRequests(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	gone, err := GetRequest(db, mine1.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := GetRequest(db, other.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
}
