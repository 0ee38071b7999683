package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/chorebot/internal/model"
)

// canonicalOrder is the position-addressing contract shared by GetTodos and
// GetTodoAt: recurring todos first, shortest interval first, then
// alphabetically; one-time todos follow, alphabetically. List positions and
// delete/check positions resolve against this exact order.
const canonicalOrder = " ORDER BY (interval_days IS NULL), interval_days, description"

const todoColumns = `
	id, chat_id, description, interval_days,
	assigned_member, scheduled_for, completed_by, created_at`

// CreateTodo inserts a new todo. Generates a UUID if ID is empty.
// An interval outside [1, 999] is stored as absent (one-time).
func (s *SQLiteStore) CreateTodo(ctx context.Context, todo model.Todo) error {
	if strings.TrimSpace(todo.Description) == "" {
		return fmt.Errorf("todo description must not be empty")
	}
	if todo.AssignedMember == "" {
		return fmt.Errorf("todo must have an assigned member")
	}
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now().UTC()
	}
	todo.IntervalDays = model.NormalizeInterval(todo.IntervalDays)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (
			id, chat_id, description, interval_days,
			assigned_member, scheduled_for, completed_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		todo.ID, todo.ChatID, todo.Description, todo.IntervalDays,
		todo.AssignedMember, todo.ScheduledFor, todo.CompletedBy, todo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}
	return nil
}

// GetTodos returns all todos of a chat in canonical order.
func (s *SQLiteStore) GetTodos(ctx context.Context, chatID int64) ([]model.Todo, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT"+todoColumns+" FROM todos WHERE chat_id = ?"+canonicalOrder,
		chatID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying todos of chat %d: %w", chatID, err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// GetTodoAt resolves a 1-based position against the canonical order.
// Returns nil without error when the position is out of range.
func (s *SQLiteStore) GetTodoAt(
	ctx context.Context,
	chatID int64,
	position int,
) (*model.Todo, error) {
	if position < 1 {
		return nil, nil
	}

	rows, err := s.db.QueryxContext(ctx,
		"SELECT"+todoColumns+" FROM todos WHERE chat_id = ?"+canonicalOrder+" LIMIT 1 OFFSET ?",
		chatID, position-1,
	)
	if err != nil {
		return nil, fmt.Errorf("querying todo %d of chat %d: %w", position, chatID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	todo, err := scanTodo(rows)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// SetTodoCompletion sets or clears the completing member of a todo.
func (s *SQLiteStore) SetTodoCompletion(
	ctx context.Context,
	id string,
	completedBy *string,
) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE todos SET completed_by = ? WHERE id = ?",
		completedBy, id,
	)
	if err != nil {
		return fmt.Errorf("setting completion of todo %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("todo %s not found", id)
	}
	return nil
}

// ResetTodoCycle starts a fresh cycle for a recurring todo: clears the
// completion mark, re-assigns it, and moves scheduled_for forward.
func (s *SQLiteStore) ResetTodoCycle(
	ctx context.Context,
	id, assignedMember string,
	scheduledFor model.Date,
) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE todos SET
			completed_by = NULL, assigned_member = ?, scheduled_for = ?
		WHERE id = ?`,
		assignedMember, scheduledFor, id,
	)
	if err != nil {
		return fmt.Errorf("resetting cycle of todo %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("todo %s not found", id)
	}
	return nil
}

// DeleteTodo physically removes a todo by ID. There is no soft delete.
func (s *SQLiteStore) DeleteTodo(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("todo %s not found", id)
	}
	return nil
}

// GetExpiredRecurring returns every completed recurring todo, in any chat,
// whose interval has fully elapsed: scheduled_for < today - interval_days.
func (s *SQLiteStore) GetExpiredRecurring(
	ctx context.Context,
	today model.Date,
) ([]model.Todo, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT`+todoColumns+`
		FROM todos
		WHERE interval_days IS NOT NULL
			AND completed_by IS NOT NULL
			AND scheduled_for < date(?, '-' || interval_days || ' days')`,
		today,
	)
	if err != nil {
		return nil, fmt.Errorf("querying expired recurring todos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// PurgeStaleOneTime deletes completed one-time todos, in any chat, whose
// one-day grace period after scheduled_for has passed. Returns the number
// of rows removed.
func (s *SQLiteStore) PurgeStaleOneTime(
	ctx context.Context,
	today model.Date,
) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM todos
		WHERE interval_days IS NULL
			AND completed_by IS NOT NULL
			AND scheduled_for < date(?, '-1 day')`,
		today,
	)
	if err != nil {
		return 0, fmt.Errorf("purging stale one-time todos: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged todos: %w", err)
	}
	return rows, nil
}

// scanTodo scans a todo row from sqlx.Rows.
func scanTodo(rows interface{ Scan(dest ...interface{}) error }) (model.Todo, error) {
	var (
		todo         model.Todo
		intervalDays *int64
		completedBy  *string
	)

	err := rows.Scan(
		&todo.ID, &todo.ChatID, &todo.Description, &intervalDays,
		&todo.AssignedMember, &todo.ScheduledFor, &completedBy, &todo.CreatedAt,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("scanning todo row: %w", err)
	}

	todo.IntervalDays = intervalDays
	todo.CompletedBy = completedBy
	return todo, nil
}
