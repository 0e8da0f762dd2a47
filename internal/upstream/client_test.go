package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_AttachesTokenHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("abc123"), time.Second)
	_, err := client.Get(context.Background(), "/equipos/", nil)

	require.NoError(t, err)
	assert.Equal(t, "Token abc123", gotAuth)
}

func TestClient_NoHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken(""), time.Second)
	_, err := client.Get(context.Background(), "/login/", nil)

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_QueryParameters(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("t"), time.Second)
	query := url.Values{}
	query.Set("page_size", "10")
	query.Set("ordering", "-id")
	query.Set("search", "dell")
	_, err := client.Get(context.Background(), "/equipos/", query)

	require.NoError(t, err)
	assert.Equal(t, "10", gotQuery.Get("page_size"))
	assert.Equal(t, "-id", gotQuery.Get("ordering"))
	assert.Equal(t, "dell", gotQuery.Get("search"))
}

func TestClient_UnauthorizedMapsToErrUnauthenticated(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(srv.URL, staticToken("stale"), time.Second)
		_, err := client.Get(context.Background(), "/equipos/", nil)

		assert.ErrorIs(t, err, ErrUnauthenticated, "status %d", status)
		srv.Close()
	}
}

func TestClient_NotFoundMapsToErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("t"), time.Second)
	_, err := client.Get(context.Background(), "/equipos/999/", nil)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ValidationErrorCarriesFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"nro_serie": ["Ya existe un equipo con este número de serie."], "marca": "Este campo es requerido."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("t"), time.Second)
	err := client.PostJSON(context.Background(), "/equipos/", map[string]string{}, nil)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Ya existe un equipo con este número de serie."}, vErr.Fields["nro_serie"])
	assert.Equal(t, []string{"Este campo es requerido."}, vErr.Fields["marca"])
}

func TestClient_ServerErrorMapsToStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("t"), time.Second)
	_, err := client.Get(context.Background(), "/equipos/", nil)

	var sErr *StatusError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, http.StatusInternalServerError, sErr.StatusCode)
}

func TestClient_ConnectionRefusedMapsToErrUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, staticToken("t"), time.Second)
	_, err := client.Get(context.Background(), "/equipos/", nil)

	assert.ErrorIs(t, err, ErrUnreachable)
	assert.False(t, errors.Is(err, ErrUnauthenticated))
}

func TestClient_GetURLResolvesRelativeLink(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api", staticToken("t"), time.Second)
	_, err := client.GetURL(context.Background(), "/api/equipos/?page=2")

	require.NoError(t, err)
	assert.Equal(t, "/api/equipos/?page=2", gotPath)
}

func TestClient_PostJSONDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 5, "nombre": in["nombre"]})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("t"), time.Second)
	var out struct {
		ID   int    `json:"id"`
		Name string `json:"nombre"`
	}
	err := client.PostJSON(context.Background(), "/insumos/", map[string]string{"nombre": "cable"}, &out)

	require.NoError(t, err)
	assert.Equal(t, 5, out.ID)
	assert.Equal(t, "cable", out.Name)
}
