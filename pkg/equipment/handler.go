package equipment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/inventra/inventra/internal/rest"
	"github.com/inventra/inventra/internal/upstream"
)

type Handler struct {
	service  Service
	failures *rest.FailureWriter
}

func NewHandler(service Service, failures *rest.FailureWriter) *Handler {
	return &Handler{service: service, failures: failures}
}

// EquipmentDTO is the normalized shape the dashboard renders; the upstream's
// alternate field names never leave this package.
type EquipmentDTO struct {
	ID              int      `json:"id"`
	SerialNumber    string   `json:"serialNumber"`
	Brand           string   `json:"brand"`
	Model           string   `json:"model"`
	PurchaseDate    string   `json:"purchaseDate,omitempty"`
	AssociatedRUT   string   `json:"associatedRut,omitempty"`
	WarrantyEndDate string   `json:"warrantyEndDate,omitempty"`
	Type            string   `json:"type,omitempty"`
	Status          string   `json:"status,omitempty"`
	StatusClass     string   `json:"statusClass,omitempty"`
	Responsible     *UserRef `json:"responsible,omitempty"`
	Branch          string   `json:"branch,omitempty"`
}

type ListResponse struct {
	Items      []EquipmentDTO `json:"items"`
	NextCursor string         `json:"nextCursor,omitempty"`
	PrevCursor string         `json:"prevCursor,omitempty"`
	TotalCount int            `json:"totalCount"`
}

type WriteRequest struct {
	SerialNumber    string `json:"serialNumber"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	PurchaseDate    string `json:"purchaseDate"`
	AssociatedRUT   string `json:"associatedRut"`
	WarrantyEndDate string `json:"warrantyEndDate"`
	TypeID          *int   `json:"typeId"`
	StatusID        *int   `json:"statusId"`
	ResponsibleID   *int   `json:"responsibleId"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cursor := r.URL.Query().Get("cursor")
	search := r.URL.Query().Get("search")

	page, err := h.service.List(r.Context(), cursor, search)
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toListResponse(page))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDTO(*e))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req WriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid request body"})
		return
	}
	created, err := h.service.Create(r.Context(), req.payload())
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
	var req WriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid request body"})
		return
	}
	updated, err := h.service.Update(r.Context(), id, req.payload())
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDTO(*updated))
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

func (req WriteRequest) payload() WritePayload {
	return WritePayload{
		SerialNumber:    req.SerialNumber,
		Brand:           req.Brand,
		Model:           req.Model,
		PurchaseDate:    req.PurchaseDate,
		AssociatedRUT:   req.AssociatedRUT,
		WarrantyEndDate: req.WarrantyEndDate,
		TypeID:          req.TypeID,
		StatusID:        req.StatusID,
		ResponsibleID:   req.ResponsibleID,
	}
}

func toListResponse(page upstream.Page[Equipment]) ListResponse {
	items := make([]EquipmentDTO, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, toDTO(e))
	}
	return ListResponse{
		Items:      items,
		NextCursor: page.Next,
		PrevCursor: page.Prev,
		TotalCount: page.Count,
	}
}

func toDTO(e Equipment) EquipmentDTO {
	dto := EquipmentDTO{
		ID:              e.ID,
		SerialNumber:    e.SerialNumber,
		Brand:           e.Brand,
		Model:           e.Model,
		PurchaseDate:    e.PurchaseDate,
		AssociatedRUT:   e.AssociatedRUT,
		WarrantyEndDate: e.WarrantyEndDate,
		StatusClass:     e.StatusClass(),
		Responsible:     e.Responsible,
	}
	if e.Type != nil {
		dto.Type = e.Type.Name
	}
	if e.Status != nil {
		dto.Status = e.Status.Name
	}
	if e.Branch != nil {
		dto.Branch = e.Branch.Name
	}
	return dto
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
