package models

import "time"

// DateLayout is the fixed human-readable rendering of exercise dates on the
// wire, e.g. "Mon Jan 01 2024". External contract; do not change.
const DateLayout = "Mon Jan 02 2006"

// DateInputLayout is the accepted format for dates supplied by callers.
const DateInputLayout = "2006-01-02"

type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"-"`
}
