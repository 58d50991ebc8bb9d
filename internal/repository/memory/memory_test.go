package memory

import (
	"context"
	"testing"
	"time"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
)

func storedSession(id string, expiresIn time.Duration) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:        id,
		Principal: domain.Principal{UserID: 1, Role: domain.RoleStaff},
		Scope:     domain.NoScope(),
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := storedSession("s1", time.Hour)
	if err := store.Create(ctx, session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.ID != "s1" {
		t.Fatalf("Get() = %+v, want session s1", got)
	}

	// Mutating the returned copy must not touch the stored record.
	got.Scope = domain.AllNurseries()
	again, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if again.Scope != domain.NoScope() {
		t.Errorf("stored scope = %+v, want untouched NoScope", again.Scope)
	}

	if err := store.UpdateScope(ctx, "s1", domain.SingleNursery(3)); err != nil {
		t.Fatalf("UpdateScope() error = %v", err)
	}
	updated, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if updated.Scope != domain.SingleNursery(3) {
		t.Errorf("scope = %+v, want single nursery 3", updated.Scope)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("repeated Delete() error = %v", err)
	}
	gone, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gone != nil {
		t.Error("session still present after delete")
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	if err := store.Create(ctx, storedSession("old", -time.Minute)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.Get(ctx, "old")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Error("expired session returned as live")
	}
}

func TestCsrfTokenStoreFirstWriteWins(t *testing.T) {
	store := NewCsrfTokenStore()
	ctx := context.Background()

	first, err := store.Issue(ctx, "s1", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	second, err := store.Issue(ctx, "s1", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if first != second {
		t.Errorf("repeated Issue() minted a new token: %q vs %q", first, second)
	}

	other, err := store.Issue(ctx, "s2", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if other == first {
		t.Error("distinct sessions share a token")
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get() after delete = %q, want empty", got)
	}
}
