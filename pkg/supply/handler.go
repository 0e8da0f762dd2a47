package supply

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

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

type SupplyDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	MinStock    int    `json:"minStock,omitempty"`
	Critical    bool   `json:"critical"`
}

type ListResponse struct {
	Items      []SupplyDTO `json:"items"`
	NextCursor string      `json:"nextCursor,omitempty"`
	PrevCursor string      `json:"prevCursor,omitempty"`
	TotalCount int         `json:"totalCount"`
}

// List serves one page of supplies. The optional q parameter filters the
// already-fetched page only; it is never forwarded upstream.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), r.URL.Query().Get("cursor"))
	if err != nil {
		h.failures.Write(w, err)
		return
	}

	q := strings.ToLower(r.URL.Query().Get("q"))
	items := make([]SupplyDTO, 0, len(page.Items))
	for _, s := range page.Items {
		if q != "" && !matches(s, q) {
			continue
		}
		items = append(items, toDTO(s))
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
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid id"})
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

func matches(s Supply, q string) bool {
	haystack := strings.ToLower(s.Name + " " + s.Category + " " + s.Description)
	return strings.Contains(haystack, q)
}

func toDTO(s Supply) SupplyDTO {
	return SupplyDTO{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		Quantity:    s.Quantity,
		MinStock:    s.MinStock,
		Critical:    s.Critical(),
	}
}
