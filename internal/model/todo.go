package model

import "time"

// Bounds for the recurrence interval of a todo, in days.
const (
	MinIntervalDays int64 = 1
	MaxIntervalDays int64 = 999
)

// Todo is a trackable chore owned by a chat group, either one-time or
// recurring. It carries exactly one assignee at all times; completion may be
// recorded by a different member ("completed on another's behalf").
type Todo struct {
	ID             string    `json:"id" db:"id"`
	ChatID         int64     `json:"chat_id" db:"chat_id"`
	Description    string    `json:"description" db:"description"`
	IntervalDays   *int64    `json:"interval_days,omitempty" db:"interval_days"`
	AssignedMember string    `json:"assigned_member" db:"assigned_member"`
	ScheduledFor   Date      `json:"scheduled_for" db:"scheduled_for"`
	CompletedBy    *string   `json:"completed_by,omitempty" db:"completed_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Recurring reports whether the todo re-activates on a day interval.
func (t *Todo) Recurring() bool {
	return t.IntervalDays != nil
}

// Completed reports whether the current cycle has been completed.
func (t *Todo) Completed() bool {
	return t.CompletedBy != nil
}

// NormalizeInterval returns interval unchanged when it lies within
// [MinIntervalDays, MaxIntervalDays] and nil otherwise, so out-of-range
// values degrade to a one-time todo.
func NormalizeInterval(interval *int64) *int64 {
	if interval == nil || *interval < MinIntervalDays || *interval > MaxIntervalDays {
		return nil
	}
	return interval
}
