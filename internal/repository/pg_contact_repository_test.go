package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gundeepm/portfolio-backend/internal/model"
)

func TestPgContactRepository_SaveAndList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	repo := NewPgContactRepository(pool)

	email := fmt.Sprintf("contact-%d@example.com", time.Now().UnixNano())
	msg := &model.ContactMessage{
		Name:    "Jane",
		Email:   email,
		Subject: "Hi",
		Message: "Hello",
	}
	if err := repo.Save(ctx, msg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if msg.ID == "" {
		t.Error("expected ID to be set after Save")
	}
	if msg.SubmittedAt.IsZero() {
		t.Error("expected SubmittedAt to be set after Save")
	}

	messages, err := repo.List(ctx, model.ListOptions{Limit: 50, Offset: 0})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	found := false
	for _, m := range messages {
		if m.Email == email {
			found = true
			if m.Subject != "Hi" || m.Message != "Hello" || m.Name != "Jane" {
				t.Errorf("stored fields do not match: %+v", m)
			}
		}
	}
	if !found {
		t.Error("saved message not returned by List")
	}
}

// TestPgContactRepository_RepeatSubmissions verifies there is no
// uniqueness constraint on the sender email.
func TestPgContactRepository_RepeatSubmissions(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	repo := NewPgContactRepository(pool)

	email := fmt.Sprintf("repeat-%d@example.com", time.Now().UnixNano())
	for i := 0; i < 2; i++ {
		msg := &model.ContactMessage{
			Name:    "Jane",
			Email:   email,
			Subject: fmt.Sprintf("message %d", i),
			Message: "again",
		}
		if err := repo.Save(ctx, msg); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}
}
