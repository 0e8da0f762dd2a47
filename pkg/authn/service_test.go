package authn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inventra/inventra/internal/event_bus"
	"github.com/inventra/inventra/internal/session"
	"github.com/inventra/inventra/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T, fn http.HandlerFunc) (*ServiceImpl, *session.Store, *event_bus.EventBus) {
	srv := httptest.NewServer(fn)
	t.Cleanup(srv.Close)

	store, err := session.NewStore(t.TempDir())
	require.NoError(t, err)
	bus := event_bus.NewEventBus()
	client := upstream.NewClient(srv.URL, store, time.Second)
	return NewService(client, store, bus), store, bus
}

func TestService_LoginStoresTokenAndPublishes(t *testing.T) {
	service, store, bus := setupService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login/", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin@inventra.cl", creds["correo"])
		assert.Equal(t, "secreto", creds["contraseña"])
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1", "user_id": 7, "email": "admin@inventra.cl", "es_admin": true,
		})
	})

	var started []event_bus.SessionChange
	bus.Subscribe(event_bus.SessionStarted, func(e event_bus.Event) error {
		started = append(started, e.Data.(event_bus.SessionChange))
		return nil
	})

	sess, err := service.Login(context.Background(), "admin@inventra.cl", "secreto")

	require.NoError(t, err)
	assert.Equal(t, 7, sess.UserID)
	assert.True(t, sess.Admin)
	assert.Equal(t, "tok-1", store.Token())
	require.Len(t, started, 1)
	assert.Equal(t, "admin@inventra.cl", started[0].Email)
}

func TestService_LoginRejectionLeavesSessionEmpty(t *testing.T) {
	service, store, _ := setupService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := service.Login(context.Background(), "x@y.cl", "wrong")

	assert.ErrorIs(t, err, upstream.ErrUnauthenticated)
	assert.False(t, store.Authenticated())
}

func TestService_LoginWithoutTokenFails(t *testing.T) {
	service, store, _ := setupService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"user_id": 7})
	})

	_, err := service.Login(context.Background(), "x@y.cl", "pw")

	assert.Error(t, err)
	assert.False(t, store.Authenticated())
}

func TestService_LogoutClearsTokenAndPublishes(t *testing.T) {
	service, store, bus := setupService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token": "tok-2"})
	})
	require.NoError(t, store.SetToken("tok-2"))

	ended := 0
	bus.Subscribe(event_bus.SessionEnded, func(event_bus.Event) error {
		ended++
		return nil
	})

	require.NoError(t, service.Logout(context.Background()))

	assert.False(t, store.Authenticated())
	assert.Equal(t, 1, ended)
}
