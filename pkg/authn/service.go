package authn

import (
	"context"
	"fmt"

	"github.com/inventra/inventra/internal/event_bus"
	"github.com/inventra/inventra/internal/session"
	"github.com/inventra/inventra/internal/upstream"
	log "github.com/sirupsen/logrus"
)

const loginPath = "/login/"

// Session describes the logged-in account as reported by the upstream at
// login time.
type Session struct {
	UserID int
	Email  string
	Admin  bool
}

type Service interface {
	// Login exchanges credentials for an upstream token and stores it.
	Login(ctx context.Context, email, password string) (*Session, error)
	// Logout clears the stored token.
	Logout(ctx context.Context) error
}

type ServiceImpl struct {
	client *upstream.Client
	store  *session.Store
	bus    *event_bus.EventBus
}

func NewService(client *upstream.Client, store *session.Store, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{client: client, store: store, bus: bus}
}

// loginRequest is the upstream's (Spanish) login contract.
type loginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"contraseña"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Admin  bool   `json:"es_admin"`
}

func (s *ServiceImpl) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp loginResponse
	err := s.client.PostJSON(ctx, loginPath, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("upstream login returned no token")
	}
	if err := s.store.SetToken(resp.Token); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	sess := &Session{UserID: resp.UserID, Email: resp.Email, Admin: resp.Admin}
	s.publish(ctx, event_bus.SessionStarted, sess)
	log.Infof("user %s logged in", resp.Email)
	return sess, nil
}

func (s *ServiceImpl) Logout(ctx context.Context) error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.publish(ctx, event_bus.SessionEnded, nil)
	log.Info("session ended")
	return nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, sess *Session) {
	if s.bus == nil {
		return
	}
	var change event_bus.SessionChange
	if sess != nil {
		change = event_bus.SessionChange{UserID: sess.UserID, Email: sess.Email, Admin: sess.Admin}
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, change)); err != nil {
		log.Debugf("session event not fully handled: %v", err)
	}
}
