package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound = errors.New("test event not found")
	ErrDatabase      = errors.New("database error")
)

// IsDatabaseError reports whether err comes from the database layer
// (connection failure, SQL error, transaction failure).
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabase)
}
