// Package engine implements the assignment and completion engine: creating
// todos with a randomly drawn assignee, toggling completion, listing, and
// deletion. Every operation returns a rendered text reply; failures never
// propagate past the operation boundary.
package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/chorebot/internal/model"
	"github.com/nhle/chorebot/internal/roster"
	"github.com/nhle/chorebot/internal/store"
)

// User-visible replies shared across operations. Store failures are
// surfaced without internal detail; the detail goes to the log.
const (
	msgDatabaseError  = "Database error."
	msgTodoNotFound   = "Todo not found."
	msgUnknownUser    = "Unknown user."
	msgNoAssignee     = "Could not assign the todo: nobody is registered in this chat yet."
	msgBadDescription = "Todo description must be 1-64 printable characters."
)

// Engine executes inbound chat actions against the todo store.
type Engine struct {
	store  store.Store
	roster *roster.Registry
	log    *zap.SugaredLogger

	// today is the single day-granularity time source for all
	// scheduling comparisons. Overridable in tests.
	today func() model.Date
}

// New creates an Engine.
func New(s store.Store, r *roster.Registry, log *zap.SugaredLogger) *Engine {
	return &Engine{
		store:  s,
		roster: r,
		log:    log,
		today:  model.Today,
	}
}

// AddTodo creates a todo scheduled for today with a randomly drawn
// assignee. An interval outside [1, 999] is treated as absent. When the
// chat has no registered members, no row is created.
func (e *Engine) AddTodo(
	ctx context.Context,
	chatID int64,
	description string,
	intervalDays *int64,
) string {
	description = sanitizeDescription(description)
	if description == "" {
		return msgBadDescription
	}
	intervalDays = model.NormalizeInterval(intervalDays)

	assignee, err := e.roster.RandomMember(ctx, chatID)
	if errors.Is(err, roster.ErrNoMembers) {
		return msgNoAssignee
	}
	if err != nil {
		e.log.Errorw("drawing random assignee failed", "chat_id", chatID, "error", err)
		return msgDatabaseError
	}

	todo := model.Todo{
		ChatID:         chatID,
		Description:    description,
		IntervalDays:   intervalDays,
		AssignedMember: assignee.ID,
		ScheduledFor:   e.today(),
	}
	if err := e.store.CreateTodo(ctx, todo); err != nil {
		e.log.Errorw("creating todo failed", "chat_id", chatID, "error", err)
		return msgDatabaseError
	}

	return fmt.Sprintf("Added: %s", description)
}

// ListTodos renders the full todo list of a chat followed by the
// per-assignee view of todos actionable today.
func (e *Engine) ListTodos(ctx context.Context, chatID int64) string {
	todos, err := e.store.GetTodos(ctx, chatID)
	if err != nil {
		e.log.Errorw("listing todos failed", "chat_id", chatID, "error", err)
		return msgDatabaseError
	}
	members, err := e.store.GetMembers(ctx, chatID)
	if err != nil {
		e.log.Errorw("listing chat members failed", "chat_id", chatID, "error", err)
		return msgDatabaseError
	}

	today := e.today()
	return renderAllTodos(todos, today) + "\n\n\n" + renderAssigneeView(todos, members, today)
}

// DeleteTodo physically removes the todo at a 1-based list position and
// renders the refreshed list. An out-of-range position mutates nothing.
func (e *Engine) DeleteTodo(ctx context.Context, chatID int64, position int) string {
	todo, err := e.store.GetTodoAt(ctx, chatID, position)
	if err != nil {
		e.log.Errorw("resolving todo position failed", "chat_id", chatID, "position", position, "error", err)
		return msgDatabaseError
	}
	if todo == nil {
		return msgTodoNotFound
	}

	if err := e.store.DeleteTodo(ctx, todo.ID); err != nil {
		e.log.Errorw("deleting todo failed", "todo_id", todo.ID, "error", err)
		return msgDatabaseError
	}

	todos, err := e.store.GetTodos(ctx, chatID)
	if err != nil {
		e.log.Errorw("listing todos failed", "chat_id", chatID, "error", err)
		return msgDatabaseError
	}
	return fmt.Sprintf("Deleted: %s\n\n%s", todo.Description, renderAllTodos(todos, e.today()))
}

// CheckTodo toggles completion of the todo at a 1-based list position.
// A completed todo is reopened; a pending one is marked completed by the
// acting member, who need not be its assignee.
func (e *Engine) CheckTodo(
	ctx context.Context,
	chatID int64,
	position int,
	actor *model.ChatMember,
) string {
	if actor == nil {
		return msgUnknownUser
	}

	todo, err := e.store.GetTodoAt(ctx, chatID, position)
	if err != nil {
		e.log.Errorw("resolving todo position failed", "chat_id", chatID, "position", position, "error", err)
		return msgDatabaseError
	}
	if todo == nil {
		return msgTodoNotFound
	}

	var completedBy *string
	if !todo.Completed() {
		completedBy = &actor.ID
	}
	if err := e.store.SetTodoCompletion(ctx, todo.ID, completedBy); err != nil {
		e.log.Errorw("toggling todo completion failed", "todo_id", todo.ID, "error", err)
		return msgDatabaseError
	}

	checkbox := checkboxPending
	if completedBy != nil {
		checkbox = checkboxDone
	}
	return fmt.Sprintf("%s %s", checkbox, todo.Description)
}
