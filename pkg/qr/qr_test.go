package qr

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Link(t *testing.T) {
	b := NewBuilder("https://api.qrserver.com/v1/create-qr-code/", "http://inventra.local/", 200)

	assert.Equal(t, "http://inventra.local/equipos/42", b.Link(42))
}

func TestBuilder_ImageURLEncodesDeepLink(t *testing.T) {
	b := NewBuilder("https://api.qrserver.com/v1/create-qr-code/", "http://inventra.local", 250)

	raw := b.ImageURL(7)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "api.qrserver.com", u.Host)
	assert.Equal(t, "250x250", u.Query().Get("size"))
	assert.Equal(t, "http://inventra.local/equipos/7", u.Query().Get("data"))
}

func TestBuilder_DefaultsSize(t *testing.T) {
	b := NewBuilder("https://qr.example/", "http://inventra.local", 0)

	u, err := url.Parse(b.ImageURL(1))
	require.NoError(t, err)
	assert.Equal(t, "200x200", u.Query().Get("size"))
}

func TestHandler_GetCode(t *testing.T) {
	handler := NewHandler(NewBuilder("https://qr.example/", "http://inventra.local", 200))

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/equipment/5/qr", nil), map[string]string{"id": "5"})
	w := httptest.NewRecorder()
	handler.GetCode(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http://inventra.local/equipos/5")
}

func TestHandler_GetCodeInvalidID(t *testing.T) {
	handler := NewHandler(NewBuilder("https://qr.example/", "http://inventra.local", 200))

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/equipment/x/qr", nil), map[string]string{"id": "x"})
	w := httptest.NewRecorder()
	handler.GetCode(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
