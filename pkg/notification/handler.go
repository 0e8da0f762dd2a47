package notification

import (
	"net/http"
	"time"

	"github.com/inventra/inventra/internal/rest"
)

type Handler struct {
	service  Service
	poller   *Poller
	failures *rest.FailureWriter
}

func NewHandler(service Service, poller *Poller, failures *rest.FailureWriter) *Handler {
	return &Handler{service: service, poller: poller, failures: failures}
}

type NotificationDTO struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Read        bool   `json:"read"`
}

type BellResponse struct {
	Items     []NotificationDTO `json:"items"`
	FetchedAt *time.Time        `json:"fetchedAt,omitempty"`
	Stale     bool              `json:"stale"`
}

// Bell serves the poller's latest snapshot; it never blocks on the upstream.
func (h *Handler) Bell(w http.ResponseWriter, r *http.Request) {
	items, fetchedAt, stale := h.poller.Snapshot()
	resp := BellResponse{Items: toDTOs(items), Stale: stale}
	if !fetchedAt.IsZero() {
		resp.FetchedAt = &fetchedAt
	}
	rest.WriteJSON(w, http.StatusOK, resp)
}

// List fetches fresh notifications from the upstream, for the full
// notifications page.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, BellResponse{Items: toDTOs(items)})
}

func toDTOs(items []Activity) []NotificationDTO {
	dtos := make([]NotificationDTO, 0, len(items))
	for _, a := range items {
		dtos = append(dtos, NotificationDTO{
			ID:          a.ID,
			Title:       a.DisplayTitle(),
			Description: a.Description,
			Date:        a.Date,
			Read:        a.Read,
		})
	}
	return dtos
}
