package aocweb

import (
	"errors"
	"time"
)

// Puzzles unlock at midnight US Eastern time.
func puzzleTimezone() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}

// MostRecentYear returns the latest year with a puzzle calendar: the current
// year in the puzzle timezone once December has started, the previous year
// before that.
func MostRecentYear(now time.Time) int {
	t := now.In(puzzleTimezone())
	if t.Month() < time.December {
		return t.Year() - 1
	}
	return t.Year()
}

// CurrentDay returns today's puzzle day in the puzzle timezone, capped at 25.
// Outside December there is no current day and an error is returned.
func CurrentDay(now time.Time) (int, error) {
	t := now.In(puzzleTimezone())
	if t.Month() != time.December {
		return 0, errors.New("current day is only defined in December")
	}
	day := t.Day()
	if day > 25 {
		day = 25
	}
	return day, nil
}
