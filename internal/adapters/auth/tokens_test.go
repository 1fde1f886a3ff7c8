package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"spotstay/internal/adapters/auth"
)

type memSessions struct {
	mu    sync.Mutex
	store map[string]int64
}

func (s *memSessions) Put(ctx context.Context, sid string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		s.store = map[string]int64{}
	}
	s.store[sid] = userID
	return nil
}

func (s *memSessions) Resolve(ctx context.Context, sid string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.store[sid]
	return id, ok, nil
}

func (s *memSessions) Revoke(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.store, sid)
	return nil
}

func newManager(t *testing.T) (*auth.Manager, *memSessions) {
	t.Helper()
	sessions := &memSessions{}
	m, err := auth.NewManager([]byte("test-secret"), time.Hour, sessions)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m, sessions
}

func TestIssueAndResolve(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, 42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	userID, err := m.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestRevokedTokenIsDead(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, 42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := m.Revoke(ctx, token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := m.Resolve(ctx, token); err != auth.ErrInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	m, _ := newManager(t)
	if _, err := m.Resolve(context.Background(), "not-a-jwt"); err != auth.ErrInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestForeignSignatureRejected(t *testing.T) {
	m, sessions := newManager(t)
	other, err := auth.NewManager([]byte("other-secret"), time.Hour, sessions)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	token, err := other.Issue(context.Background(), 42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Resolve(context.Background(), token); err != auth.ErrInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
