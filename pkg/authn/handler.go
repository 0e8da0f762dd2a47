package authn

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inventra/inventra/internal/rest"
	"github.com/inventra/inventra/internal/session"
	"github.com/inventra/inventra/internal/upstream"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service  Service
	store    *session.Store
	failures *rest.FailureWriter
}

func NewHandler(service Service, store *session.Store, failures *rest.FailureWriter) *Handler {
	return &Handler{service: service, store: store, failures: failures}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Admin  bool   `json:"admin"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "email and password are required"})
		return
	}

	sess, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// A rejected login is not an expired session: report invalid
		// credentials instead of redirecting.
		if errors.Is(err, upstream.ErrUnauthenticated) {
			rest.WriteError(w, http.StatusUnauthorized, rest.ErrorResponse{Error: "invalid credentials"})
			return
		}
		log.Errorf("login failed: %v", err)
		h.failures.Write(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, LoginResponse{
		UserID: sess.UserID,
		Email:  sess.Email,
		Admin:  sess.Admin,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		log.Errorf("logout failed: %v", err)
		h.failures.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, ThemeResponse{Theme: h.store.Theme()})
}

func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.store.SetTheme(req.Theme); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: err.Error()})
		return
	}
	rest.WriteJSON(w, http.StatusOK, ThemeResponse{Theme: h.store.Theme()})
}
