package models

// User tracks per-user submission timing.
type User struct {
	UserID string

	// LastSubmit maps guild id to the unix-millisecond time of the user's
	// last successful submission there.
	LastSubmit map[string]int64

	// LastDeletion is when the user last bulk-deleted their request data.
	LastDeletion int64
}
