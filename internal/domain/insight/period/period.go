// Package period parses export dates and classifies them into calendar windows.
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// Mode selects a calendar window
type Mode string

const (
	ModeDay             Mode = "day"
	ModeISOWeek         Mode = "iso_week"
	ModeMonth           Mode = "month"
	ModeYear            Mode = "year"
	ModeMilestoneBefore Mode = "milestone_before"
	ModeMilestoneAfter  Mode = "milestone_after"
)

// DefaultMilestone is the date the current operator took over the account.
// Posts on or after it belong to the "after" epoch.
var DefaultMilestone = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// "26.02.03(화)" or "26.02.03"
var datePattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{2})(?:\((.)\))?$`)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeDay, ModeISOWeek, ModeMonth, ModeYear, ModeMilestoneBefore, ModeMilestoneAfter:
		return m, nil
	default:
		return "", entity.ErrInvalidMode
	}
}

// ParseDate parses an export date into a UTC calendar date.
// It returns false for anything that is not a valid YY.MM.DD date.
func ParseDate(s string) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	yy, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	dd, _ := strconv.Atoi(m[3])

	t := time.Date(2000+yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 02.30 into March; reject instead
	if t.Month() != time.Month(mm) || t.Day() != dd {
		return time.Time{}, false
	}
	return t, true
}

// Weekday returns the weekday character in the parenthesized suffix, if any
func Weekday(s string) (string, bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil || m[4] == "" {
		return "", false
	}
	return m[4], true
}

// Today truncates a clock reading to its calendar date in its own location
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Classify reports whether date falls into the window of the given mode around anchor.
// For milestone modes anchor is the milestone itself.
func Classify(date time.Time, mode Mode, anchor time.Time) bool {
	if date.IsZero() {
		return false
	}
	switch mode {
	case ModeDay:
		return date.Year() == anchor.Year() && date.YearDay() == anchor.YearDay()
	case ModeISOWeek:
		dy, dw := date.ISOWeek()
		ay, aw := anchor.ISOWeek()
		return dy == ay && dw == aw
	case ModeMonth:
		return date.Year() == anchor.Year() && date.Month() == anchor.Month()
	case ModeYear:
		return date.Year() == anchor.Year()
	case ModeMilestoneBefore:
		return date.Before(Today(anchor))
	case ModeMilestoneAfter:
		return !date.Before(Today(anchor))
	default:
		return false
	}
}

// Previous returns an anchor inside the window preceding the one containing anchor
func Previous(anchor time.Time, mode Mode) time.Time {
	switch mode {
	case ModeDay:
		return anchor.AddDate(0, 0, -1)
	case ModeISOWeek:
		return anchor.AddDate(0, 0, -7)
	case ModeMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return first.AddDate(0, -1, 0)
	case ModeYear:
		return time.Date(anchor.Year()-1, time.January, 1, 0, 0, 0, 0, anchor.Location())
	default:
		return anchor
	}
}

// Key returns a sortable label for the window containing date
func Key(date time.Time, mode Mode) string {
	switch mode {
	case ModeDay:
		return date.Format("2006-01-02")
	case ModeISOWeek:
		y, w := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w)
	case ModeMonth:
		return date.Format("2006-01")
	case ModeYear:
		return date.Format("2006")
	default:
		return ""
	}
}

// Scope builds the post predicate for a milestone scope
func Scope(scope entity.Scope, milestone time.Time) func(entity.Post) bool {
	switch scope {
	case entity.ScopeBefore:
		return func(p entity.Post) bool { return Classify(p.Date, ModeMilestoneBefore, milestone) }
	case entity.ScopeAfter:
		return func(p entity.Post) bool { return Classify(p.Date, ModeMilestoneAfter, milestone) }
	default:
		return func(entity.Post) bool { return true }
	}
}
