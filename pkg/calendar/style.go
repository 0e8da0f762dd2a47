package calendar

// Style is the display band an event is painted with.
type Style struct {
	BackgroundColor string `json:"backgroundColor"`
}

const (
	colorTask        = "#3788d8"
	colorWarranty    = "#e74c3c"
	colorReservation = "#F57F17"
)

// StyleFor maps an event's source kind to its color band. Pure; activity
// entries share the task band.
func StyleFor(ev Event) Style {
	switch ev.Kind {
	case KindWarranty:
		return Style{BackgroundColor: colorWarranty}
	case KindReservation:
		return Style{BackgroundColor: colorReservation}
	default:
		return Style{BackgroundColor: colorTask}
	}
}
