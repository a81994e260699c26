package entity

import "time"

// Scope selects which milestone epoch a view covers
type Scope string

const (
	ScopeAll    Scope = "all"
	ScopeBefore Scope = "before"
	ScopeAfter  Scope = "after"
)

// ParseScope validates a scope, empty meaning all
func ParseScope(s string) (Scope, error) {
	switch sc := Scope(s); sc {
	case "":
		return ScopeAll, nil
	case ScopeAll, ScopeBefore, ScopeAfter:
		return sc, nil
	default:
		return "", ErrInvalidScope
	}
}

// ViewContext carries the selections a consumer made (milestone filter, clock)
// into every query instead of keeping them as shared state.
type ViewContext struct {
	Milestone time.Time
	Scope     Scope
	Now       time.Time
}
