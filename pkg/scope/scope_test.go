package scope_test

import (
	"testing"
	"time"

	"mall-backend/pkg/scope"
)

func TestManager(t *testing.T) {
	mgr := scope.New("test-secret", time.Hour)

	t.Run("Generate And Verify Roundtrip", func(t *testing.T) {
		token, err := mgr.Generate(42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := mgr.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != 42 {
			t.Errorf("expected user ID 42, got %d", claims.UserID)
		}
		if claims.JTI == "" {
			t.Error("expected a non-empty JTI")
		}
		if claims.ExpiresAt.IsZero() {
			t.Error("expected a non-zero expiry")
		}
	})

	t.Run("Unique JTI Per Token", func(t *testing.T) {
		t1, _ := mgr.Generate(1)
		t2, _ := mgr.Generate(1)

		c1, _ := mgr.Verify(t1)
		c2, _ := mgr.Verify(t2)
		if c1.JTI == c2.JTI {
			t.Error("expected distinct JTIs for separately issued tokens")
		}
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		token, _ := mgr.Generate(7)

		other := scope.New("another-secret", time.Hour)
		if _, err := other.Verify(token); err == nil {
			t.Error("expected verification to fail with a different secret")
		}
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		short := scope.New("test-secret", time.Nanosecond)
		token, _ := short.Generate(7)

		time.Sleep(10 * time.Millisecond)
		if _, err := short.Verify(token); err != scope.ErrExpiredToken {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		if _, err := mgr.Verify("not.a.token"); err != scope.ErrInvalidToken {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
