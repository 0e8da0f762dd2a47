package calendar

import "time"

// Kind identifies which upstream resource produced a calendar event. The set
// is closed: a future resource type gets its own kind, never a reuse of an
// existing one.
type Kind string

const (
	KindReservation Kind = "reservation"
	KindTask        Kind = "task"
	KindWarranty    Kind = "warranty"
	KindActivity    Kind = "activity"
)

// Prefix returns the ID prefix keeping identities unique across source kinds
// that share numeric ids upstream.
func (k Kind) Prefix() string {
	switch k {
	case KindReservation:
		return "R"
	case KindTask:
		return "T"
	case KindWarranty:
		return "G"
	case KindActivity:
		return "N"
	default:
		return "X"
	}
}

// Event is a unified calendar entry derived from one upstream record. It is
// rebuilt from scratch on every fetch cycle and never persisted.
type Event struct {
	// ID is "<prefix>-<upstream id>", stable across refreshes.
	ID    string
	Title string
	// Start and End satisfy Start <= End; for all-day kinds Start == End is
	// a single-day block.
	Start  time.Time
	End    time.Time
	AllDay bool
	Kind   Kind
	// Source is the original fetched record, kept untouched for the detail
	// panel. The aggregator never mutates it.
	Source any
}
