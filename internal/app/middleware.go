package app

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/inventra/inventra/internal/config"
	"github.com/inventra/inventra/internal/rest"
	log "github.com/sirupsen/logrus"
)

// publicPath reports whether an endpoint is usable before login. Theme is
// local preference state, so the login screen can already honor it.
func publicPath(path string) bool {
	switch {
	case path == "/api/login", path == "/api/logout":
		return true
	case path == "/api/theme":
		return true
	default:
		return false
	}
}

func jsonContentType(value string) bool {
	mediaType := strings.TrimSpace(strings.Split(value, ";")[0])
	return strings.EqualFold(mediaType, "application/json")
}

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Tag every request with an ID for log correlation.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestID := req.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", requestID)
			log.Debugf("[%s] %s %s", requestID, req.Method, req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})

	// Write requests must carry JSON; rejecting other payloads here keeps
	// the handlers' decoders to one error path.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			switch req.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if req.ContentLength != 0 && !jsonContentType(req.Header.Get("Content-Type")) {
					rest.WriteError(w, http.StatusUnsupportedMediaType, rest.ErrorResponse{
						Error: "request body must be application/json",
					})
					return
				}
			}
			next.ServeHTTP(w, req)
		})
	})

	// Session guard: API calls other than login and theme need a stored
	// upstream token. Unauthenticated callers are pointed back at the login
	// screen rather than handed an opaque failure.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !strings.HasPrefix(req.URL.Path, "/api/") || publicPath(req.URL.Path) {
				next.ServeHTTP(w, req)
				return
			}
			if !deps.SessionStore.Authenticated() {
				rest.WriteJSON(w, http.StatusUnauthorized, rest.ErrorResponse{
					Error:    "authentication required",
					Redirect: "/login",
				})
				return
			}
			next.ServeHTTP(w, req)
		})
	})
}
