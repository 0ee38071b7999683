// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/nhle/chorebot/internal/model"
	"github.com/nhle/chorebot/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// SeedMember inserts a chat member directly into the store.
func SeedMember(t *testing.T, s store.Store, chatID, userID int64, name string) model.ChatMember {
	t.Helper()

	m := model.ChatMember{
		ID:          uuid.New().String(),
		ChatID:      chatID,
		UserID:      userID,
		DisplayName: name,
	}
	if err := s.CreateMember(context.Background(), m); err != nil {
		t.Fatalf("seeding member %s: %v", name, err)
	}
	return m
}

// SeedTodo inserts a todo directly into the store, generating an ID if
// the caller left it empty.
func SeedTodo(t *testing.T, s store.Store, todo model.Todo) model.Todo {
	t.Helper()

	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	if err := s.CreateTodo(context.Background(), todo); err != nil {
		t.Fatalf("seeding todo %q: %v", todo.Description, err)
	}
	return todo
}
