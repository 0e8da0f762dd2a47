package profile

import (
	"encoding/json"
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

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context())
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid request body"})
		return
	}
	updated, err := h.service.Update(r.Context(), p)
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, updated)
}
