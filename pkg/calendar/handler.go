package calendar

import (
	"net/http"
	"sort"
	"time"

	"github.com/inventra/inventra/internal/rest"
	"github.com/inventra/inventra/internal/utils"
)

type Handler struct {
	aggregator *Aggregator
	clock      utils.Clock
}

func NewHandler(aggregator *Aggregator, clock utils.Clock) *Handler {
	return &Handler{aggregator: aggregator, clock: clock}
}

type EventDTO struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	AllDay bool      `json:"allDay"`
	Kind   string    `json:"kind"`
	Style  Style     `json:"style"`
	Source any       `json:"source"`
}

type EventsResponse struct {
	View            string     `json:"view"`
	Events          []EventDTO `json:"events"`
	Partial         bool       `json:"partial"`
	FailedSources   []string   `json:"failedSources,omitempty"`
	ConnectionError string     `json:"connectionError,omitempty"`
}

// GetEvents serves the unified calendar for the requested view. A failed
// source degrades the response instead of failing it; a connectivity-class
// failure is reported once via connectionError alongside whatever did load.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	view, err := ParseView(r.URL.Query().Get("view"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "invalid view",
			Details: "view must be one of month, week, day, agenda",
		})
		return
	}

	result := h.aggregator.Events(r.Context())
	events := Visible(result.Events, view, h.clock.Now())

	// The aggregator imposes no order; the agenda is the one view that needs
	// a chronological list.
	if view == ViewAgenda {
		sort.Slice(events, func(i, j int) bool {
			return events[i].Start.Before(events[j].Start)
		})
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, ev := range events {
		dtos = append(dtos, EventDTO{
			ID:     ev.ID,
			Title:  ev.Title,
			Start:  ev.Start,
			End:    ev.End,
			AllDay: ev.AllDay,
			Kind:   string(ev.Kind),
			Style:  StyleFor(ev),
			Source: ev.Source,
		})
	}

	resp := EventsResponse{
		View:          string(view),
		Events:        dtos,
		Partial:       result.Partial(),
		FailedSources: result.Failed,
	}
	if result.Unreachable {
		resp.ConnectionError = "cannot reach the inventory server; showing what could be loaded"
	}
	rest.WriteJSON(w, http.StatusOK, resp)
}
