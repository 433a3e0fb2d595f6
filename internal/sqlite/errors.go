package sqlite

import "strings"

// The modernc.org/sqlite driver reports constraint failures only through the
// error text, so classification is substring matching on the sqlite message.

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
