package audit

import (
	"net/http"

	"github.com/inventra/inventra/internal/rest"
)

type Handler struct {
	service  Service
	failures *rest.FailureWriter
}

func NewHandler(service Service, failures *rest.FailureWriter) *Handler {
	return &Handler{service: service, failures: failures}
}

type EntryDTO struct {
	ID       int    `json:"id"`
	Username string `json:"username,omitempty"`
	Action   string `json:"action"`
	Model    string `json:"model"`
	Detail   string `json:"detail,omitempty"`
	Date     string `json:"date,omitempty"`
}

type ListResponse struct {
	Items      []EntryDTO `json:"items"`
	NextCursor string     `json:"nextCursor,omitempty"`
	PrevCursor string     `json:"prevCursor,omitempty"`
	TotalCount int        `json:"totalCount"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), r.URL.Query().Get("cursor"))
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	items := make([]EntryDTO, 0, len(page.Items))
	for _, e := range page.Items {
		dto := EntryDTO{
			ID:     e.ID,
			Action: e.Action,
			Model:  e.Model,
			Detail: e.Detail,
			Date:   e.Date,
		}
		if e.User != nil {
			dto.Username = e.User.Username
		}
		items = append(items, dto)
	}
	rest.WriteJSON(w, http.StatusOK, ListResponse{
		Items:      items,
		NextCursor: page.Next,
		PrevCursor: page.Prev,
		TotalCount: page.Count,
	})
}
