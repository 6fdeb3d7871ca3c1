package domain

import "time"

// File is an audio file dropped into the inbox directory.
type File struct {
	Name         string     `db:"name"`
	Status       Status     `db:"status"`
	ErrorMessage string     `db:"error_message"`
	ProcessedAt  *time.Time `db:"processed_at"`
}
