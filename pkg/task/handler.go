package task

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/inventra/inventra/internal/rest"
)

type Handler struct {
	service  Service
	failures *rest.FailureWriter
}

func NewHandler(service Service, failures *rest.FailureWriter) *Handler {
	return &Handler{service: service, failures: failures}
}

// TaskDTO is the board's normalized view of a task.
type TaskDTO struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	DueTime     string `json:"dueTime,omitempty"`
	DueDateTime string `json:"dueDateTime,omitempty"`
	Completed   bool   `json:"completed"`
	AssignedTo  int    `json:"assignedTo,omitempty"`
}

type ListResponse struct {
	Items      []TaskDTO `json:"items"`
	NextCursor string    `json:"nextCursor,omitempty"`
	PrevCursor string    `json:"prevCursor,omitempty"`
	TotalCount int       `json:"totalCount"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), r.URL.Query().Get("cursor"))
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	items := make([]TaskDTO, 0, len(page.Items))
	for _, t := range page.Items {
		items = append(items, toDTO(t))
	}
	rest.WriteJSON(w, http.StatusOK, ListResponse{
		Items:      items,
		NextCursor: page.Next,
		PrevCursor: page.Prev,
		TotalCount: page.Count,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload WritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid request body"})
		return
	}
	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, toDTO(*created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var payload WritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid request body"})
		return
	}
	updated, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDTO(*updated))
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	completed, err := h.service.Complete(r.Context(), id)
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDTO(*completed))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.failures.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(t Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Title:       t.DisplayTitle(),
		Description: t.Description,
		DueDate:     t.DueDate,
		DueTime:     t.DueTime,
		DueDateTime: t.DueDateTime,
		Completed:   t.Completed(),
		AssignedTo:  t.AssignedTo,
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
