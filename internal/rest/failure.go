package rest

import (
	"errors"
	"net/http"

	"github.com/inventra/inventra/internal/upstream"
	log "github.com/sirupsen/logrus"
)

// TokenClearer removes the stored session token. The session store satisfies
// it.
type TokenClearer interface {
	Clear() error
}

// FailureWriter translates upstream client errors into the dashboard's HTTP
// responses: authentication failures clear the token and redirect to login,
// validation failures surface field messages inline, connectivity failures
// become a "cannot reach server" banner. Nothing escalates past a rendered
// message.
type FailureWriter struct {
	Sessions TokenClearer
}

func (f *FailureWriter) Write(w http.ResponseWriter, err error) {
	var validation *upstream.ValidationError
	var status *upstream.StatusError

	switch {
	case errors.Is(err, upstream.ErrUnauthenticated):
		if f.Sessions != nil {
			if clearErr := f.Sessions.Clear(); clearErr != nil {
				log.Errorf("failed to clear session token: %v", clearErr)
			}
		}
		WriteError(w, http.StatusUnauthorized, ErrorResponse{
			Error:    "authentication required",
			Redirect: "/login",
		})
	case errors.As(err, &validation):
		WriteError(w, http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: validation.Fields,
		})
	case errors.Is(err, upstream.ErrUnreachable):
		WriteError(w, http.StatusBadGateway, ErrorResponse{
			Error:   "cannot reach the inventory server",
			Details: "check that the upstream API is running, then retry",
		})
	case errors.Is(err, upstream.ErrNotFound):
		WriteError(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.As(err, &status):
		log.Errorf("upstream request failed: %v", err)
		WriteError(w, http.StatusBadGateway, ErrorResponse{Error: status.Error()})
	default:
		log.Errorf("request failed: %v", err)
		WriteError(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
