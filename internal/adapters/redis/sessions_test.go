package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "spotstay/internal/adapters/redis"
)

func newSessions(t *testing.T) *redisad.Sessions {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestSessions_PutResolveRevoke(t *testing.T) {
	s := newSessions(t)
	ctx := context.Background()

	if err := s.Put(ctx, "abc", 7, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}

	userID, ok, err := s.Resolve(ctx, "abc")
	if err != nil || !ok || userID != 7 {
		t.Fatalf("resolve: id=%d ok=%v err=%v", userID, ok, err)
	}

	if err := s.Revoke(ctx, "abc"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, ok, _ := s.Resolve(ctx, "abc"); ok {
		t.Fatal("session still live after revoke")
	}
}

func TestSessions_UnknownIDIsNotAnError(t *testing.T) {
	s := newSessions(t)

	userID, ok, err := s.Resolve(context.Background(), "nope")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ok || userID != 0 {
		t.Fatalf("expected dead session, got id=%d ok=%v", userID, ok)
	}
}
