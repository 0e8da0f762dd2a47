package notification

// Activity is an upstream activity feed record. The tipo discriminator
// separates bell notifications from tasks, which live on the same table
// upstream.
type Activity struct {
	ID          int    `json:"id"`
	Type        string `json:"tipo"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	Date        string `json:"fecha"`
	DueDateTime string `json:"due_datetime"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
	Read        bool   `json:"leida"`
}

// IsNotification reports whether this entry belongs on the bell.
func (a Activity) IsNotification() bool {
	return a.Type == "notificacion"
}

// DisplayTitle falls back to the description when no title was recorded.
func (a Activity) DisplayTitle() string {
	if a.Title != "" {
		return a.Title
	}
	if a.Description != "" {
		return a.Description
	}
	return "Notificación"
}
