package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inventra/inventra/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClearer struct {
	cleared bool
}

func (r *recordingClearer) Clear() error {
	r.cleared = true
	return nil
}

func writeFailure(t *testing.T, err error) (*recordingClearer, int, ErrorResponse) {
	t.Helper()
	clearer := &recordingClearer{}
	fw := &FailureWriter{Sessions: clearer}
	w := httptest.NewRecorder()
	fw.Write(w, err)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return clearer, w.Code, resp
}

func TestFailureWriter_AuthFailureClearsTokenAndRedirects(t *testing.T) {
	clearer, code, resp := writeFailure(t, upstream.ErrUnauthenticated)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "/login", resp.Redirect)
	assert.True(t, clearer.cleared)
}

func TestFailureWriter_ValidationFailureSurfacesFields(t *testing.T) {
	err := &upstream.ValidationError{Fields: map[string][]string{
		"nro_serie": {"Ya existe un equipo con este número de serie."},
	}}

	clearer, code, resp := writeFailure(t, err)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, err.Fields, resp.Fields)
	assert.False(t, clearer.cleared)
}

func TestFailureWriter_UnreachableBecomesBadGateway(t *testing.T) {
	err := fmt.Errorf("%w: dial tcp: connection refused", upstream.ErrUnreachable)

	_, code, resp := writeFailure(t, err)

	assert.Equal(t, http.StatusBadGateway, code)
	assert.Contains(t, resp.Error, "cannot reach")
	assert.Empty(t, resp.Redirect)
}

func TestFailureWriter_NotFound(t *testing.T) {
	_, code, _ := writeFailure(t, upstream.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, code)
}

func TestFailureWriter_UnknownErrorIsInternal(t *testing.T) {
	_, code, _ := writeFailure(t, errors.New("something odd"))

	assert.Equal(t, http.StatusInternalServerError, code)
}
