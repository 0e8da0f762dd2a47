package reservation

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

type ListResponse struct {
	Items      []Reservation `json:"items"`
	NextCursor string        `json:"nextCursor,omitempty"`
	PrevCursor string        `json:"prevCursor,omitempty"`
	TotalCount int           `json:"totalCount"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), r.URL.Query().Get("cursor"))
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ListResponse{
		Items:      page.Items,
		NextCursor: page.Next,
		PrevCursor: page.Prev,
		TotalCount: page.Count,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid id"})
		return
	}
	res, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, res)
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
	rest.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.failures.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
