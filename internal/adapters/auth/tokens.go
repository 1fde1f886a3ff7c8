package auth

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"spotstay/internal/domain"
)

var ErrInvalidToken = errors.New("auth: invalid token")

type claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// Manager signs HS256 bearer tokens and keeps their session ids in a
// revocable store. A token is only valid while its session id is live,
// so logout works despite the signed expiry.
type Manager struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	sessions domain.SessionStore
}

func NewManager(secret []byte, ttl time.Duration, sessions domain.SessionStore) (*Manager, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("auth: signing secret is required")
	}
	return &Manager{secret: secret, ttl: ttl, issuer: "spotstay", sessions: sessions}, nil
}

func (m *Manager) Issue(ctx context.Context, userID int64) (string, error) {
	sid, err := newSessionID()
	if err != nil {
		return "", err
	}
	if err := m.sessions.Put(ctx, sid, userID, m.ttl); err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		SessionID: sid,
	})
	return token.SignedString(m.secret)
}

func (m *Manager) Resolve(ctx context.Context, token string) (int64, error) {
	c, err := m.parse(token)
	if err != nil {
		return 0, err
	}
	userID, ok, err := m.sessions.Resolve(ctx, c.SessionID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

func (m *Manager) Revoke(ctx context.Context, token string) error {
	c, err := m.parse(token)
	if err != nil {
		return err
	}
	return m.sessions.Revoke(ctx, c.SessionID)
}

func (m *Manager) parse(token string) (*claims, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithLeeway(30*time.Second), jwt.WithIssuer(m.issuer))
	if err != nil || !parsed.Valid || c.Subject == "" || c.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := crand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
