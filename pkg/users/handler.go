package users

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

type UserDTO struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Admin      bool   `json:"admin"`
	Active     bool   `json:"active"`
	LastLogin  string `json:"lastLogin,omitempty"`
	RUT        string `json:"rut,omitempty"`
	Area       string `json:"area,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	PhotoURL   string `json:"photoUrl,omitempty"`
}

type ListResponse struct {
	Items      []UserDTO `json:"items"`
	NextCursor string    `json:"nextCursor,omitempty"`
	PrevCursor string    `json:"prevCursor,omitempty"`
	TotalCount int       `json:"totalCount"`
}

type WriteRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Password   string `json:"password"`
	Admin      bool   `json:"admin"`
	Active     bool   `json:"active"`
	RUT        string `json:"rut"`
	Area       string `json:"area"`
	Occupation string `json:"occupation"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), r.URL.Query().Get("cursor"))
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	items := make([]UserDTO, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, toDTO(u))
	}
	rest.WriteJSON(w, http.StatusOK, ListResponse{
		Items:      items,
		NextCursor: page.Next,
		PrevCursor: page.Prev,
		TotalCount: page.Count,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDTO(*u))
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
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Admin:     req.Admin,
		Active:    req.Active,
		Profile: Profile{
			RUT:        req.RUT,
			Area:       req.Area,
			Occupation: req.Occupation,
		},
	}
}

func toDTO(u User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Admin:      u.Admin,
		Active:     u.Active,
		LastLogin:  u.LastLogin,
		RUT:        u.Profile.RUT,
		Area:       u.Profile.Area,
		Occupation: u.Profile.Occupation,
		PhotoURL:   u.Profile.PhotoURL,
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
