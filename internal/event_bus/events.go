package event_bus

import "time"

const (
	// SessionStarted is published after a successful login.
	SessionStarted EventType = "session.started"
	// SessionEnded is published after logout or when the upstream rejects the
	// stored token.
	SessionEnded EventType = "session.ended"
	// NotificationsRefreshed is published by the notification poller after
	// every fetch cycle, successful or not.
	NotificationsRefreshed EventType = "notifications.refreshed"
)

type SessionChange struct {
	UserID int
	Email  string
	Admin  bool
}

type NotificationsSnapshot struct {
	Count     int
	FetchedAt time.Time
	// Stale is true when the last fetch failed and the previous snapshot is
	// still being served.
	Stale bool
}
