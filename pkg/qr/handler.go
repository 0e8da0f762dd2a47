package qr

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/inventra/inventra/internal/rest"
)

type Handler struct {
	builder *Builder
}

func NewHandler(builder *Builder) *Handler {
	return &Handler{builder: builder}
}

type CodeResponse struct {
	EquipmentID int    `json:"equipmentId"`
	Link        string `json:"link"`
	ImageURL    string `json:"imageUrl"`
}

func (h *Handler) GetCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid equipment id"})
		return
	}
	rest.WriteJSON(w, http.StatusOK, CodeResponse{
		EquipmentID: id,
		Link:        h.builder.Link(id),
		ImageURL:    h.builder.ImageURL(id),
	})
}
