package store

import (
	"context"

	"github.com/nhle/chorebot/internal/model"
)

// Store defines the persistence interface for chat members and todos.
// It carries no business rules beyond referential scoping: every read and
// write is bound to a chat id, except the scheduler scans, which
// deliberately operate across all chats.
type Store interface {
	// === Chat members ===

	CreateMember(ctx context.Context, m model.ChatMember) error

	// GetMemberByUserID returns the member registered for (chatID, userID),
	// or nil when no such member exists.
	GetMemberByUserID(ctx context.Context, chatID, userID int64) (*model.ChatMember, error)

	GetMembers(ctx context.Context, chatID int64) ([]model.ChatMember, error)

	// === Todos ===

	CreateTodo(ctx context.Context, todo model.Todo) error

	// GetTodos returns all todos of a chat in canonical order: recurring
	// before one-time, recurring by ascending interval then description,
	// one-time by description. This order is the contract behind
	// position-based addressing and must match GetTodoAt.
	GetTodos(ctx context.Context, chatID int64) ([]model.Todo, error)

	// GetTodoAt resolves a 1-based position against the canonical order.
	// Positions before 1 or past the end yield nil without error.
	GetTodoAt(ctx context.Context, chatID int64, position int) (*model.Todo, error)

	SetTodoCompletion(ctx context.Context, id string, completedBy *string) error

	// ResetTodoCycle starts a fresh cycle: clears completion, re-assigns,
	// and moves scheduled_for to the given date.
	ResetTodoCycle(ctx context.Context, id, assignedMember string, scheduledFor model.Date) error

	DeleteTodo(ctx context.Context, id string) error

	// === Scheduler scans (cross-chat) ===

	// GetExpiredRecurring returns every completed recurring todo whose
	// interval has fully elapsed relative to today.
	GetExpiredRecurring(ctx context.Context, today model.Date) ([]model.Todo, error)

	// PurgeStaleOneTime deletes completed one-time todos past their
	// one-day grace period and reports how many rows were removed.
	PurgeStaleOneTime(ctx context.Context, today model.Date) (int64, error)
}
