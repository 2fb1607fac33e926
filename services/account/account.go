// Package account owns the session lifecycle: init at login or registration,
// mutation on profile changes, teardown at logout. All session access goes
// through the cache it holds rather than ambient storage reads.
package account

import (
	"context"
	"fmt"
	"strings"

	"marketplace-client/internal/gateway"
	"marketplace-client/internal/marketerrors"
	"marketplace-client/internal/models"
	"marketplace-client/internal/session"
	"marketplace-client/utils"
)

// Gateway is the slice of the marketplace client the account service uses.
type Gateway interface {
	Register(ctx context.Context, creds gateway.Credentials) (models.Session, error)
	Login(ctx context.Context, creds gateway.Credentials) (models.Session, error)
}

// Service manages the authenticated identity.
type Service struct {
	gw          Gateway
	cache       *session.Cache
	emailDomain string
}

// NewService creates a new account Service instance. emailDomain is the
// suffix the marketplace requires on registration emails; empty disables the
// local check.
func NewService(gw Gateway, cache *session.Cache, emailDomain string) *Service {
	return &Service{gw: gw, cache: cache, emailDomain: emailDomain}
}

// Register creates a marketplace account and starts a session.
func (s *Service) Register(ctx context.Context, name, email, password string) (models.Session, error) {
	if err := s.checkEmail(email); err != nil {
		return models.Session{}, err
	}

	sess, err := s.gw.Register(ctx, gateway.Credentials{Name: name, Email: email, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("account: register: %w", err)
	}

	if err := s.cache.SaveSession(sess); err != nil {
		return models.Session{}, fmt.Errorf("account: cache session: %w", err)
	}
	utils.Info("registered", map[string]any{"name": sess.Name, "email": sess.Email})
	return sess, nil
}

// Login authenticates against the marketplace and starts a session.
func (s *Service) Login(ctx context.Context, email, password string) (models.Session, error) {
	if err := s.checkEmail(email); err != nil {
		return models.Session{}, err
	}

	sess, err := s.gw.Login(ctx, gateway.Credentials{Email: email, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("account: login: %w", err)
	}

	if err := s.cache.SaveSession(sess); err != nil {
		return models.Session{}, fmt.Errorf("account: cache session: %w", err)
	}
	utils.Info("logged in", map[string]any{"name": sess.Name})
	return sess, nil
}

// Logout tears the session down, removing the cached identity and every
// locally mirrored resource list.
func (s *Service) Logout() error {
	if err := s.cache.Clear(); err != nil {
		return fmt.Errorf("account: logout: %w", err)
	}
	return nil
}

// Current returns the cached session, if a usable one exists.
func (s *Service) Current() (models.Session, bool) {
	return s.cache.LoadSession()
}

// UpdateAvatar changes the avatar on the cached session only. The avatar is
// a display preference; nothing is pushed to the gateway.
func (s *Service) UpdateAvatar(avatarURL string) (models.Session, error) {
	sess, ok := s.cache.LoadSession()
	if !ok {
		return models.Session{}, fmt.Errorf("account: update avatar: %w", marketerrors.ErrNoSession)
	}

	sess.Avatar = avatarURL
	if err := s.cache.SaveSession(sess); err != nil {
		return models.Session{}, fmt.Errorf("account: update avatar: %w", err)
	}
	return sess, nil
}

func (s *Service) checkEmail(email string) error {
	if s.emailDomain != "" && !strings.HasSuffix(email, s.emailDomain) {
		return fmt.Errorf("account: %w - must end with %s", marketerrors.ErrInvalidEmail, s.emailDomain)
	}
	return nil
}
