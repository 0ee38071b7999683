package engine

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/nhle/chorebot/internal/model"
)

// Checkbox glyphs used across replies.
const (
	checkboxPending   = "☑️"
	checkboxDone      = "✅"
	checkboxDoneStale = "🗓"
	checkboxDelegated = "✅↪️"
	markerOverdue     = "⏳"
)

const maxDescriptionLen = 64

// sanitizeDescription strips control characters and surrounding space.
// Returns "" when the result is empty or longer than 64 characters.
func sanitizeDescription(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > maxDescriptionLen {
		return ""
	}
	return s
}

// renderAllTodos renders the numbered list of every todo in the chat, in
// canonical order. The 🗓 state (completed but scheduled for an earlier
// day) only shows transiently before the scheduler resets or purges the
// todo.
func renderAllTodos(todos []model.Todo, today model.Date) string {
	if len(todos) == 0 {
		return "No todo found."
	}

	var b strings.Builder
	b.WriteString("List of all todos:\n")
	for i, todo := range todos {
		checkbox := checkboxPending
		if todo.Completed() {
			if todo.ScheduledFor == today {
				checkbox = checkboxDone
			} else {
				checkbox = checkboxDoneStale
			}
		}

		suffix := ""
		if todo.Recurring() {
			unit := "days"
			if *todo.IntervalDays == 1 {
				unit = "day"
			}
			suffix = fmt.Sprintf(" (🔄 %d %s)", *todo.IntervalDays, unit)
		}

		fmt.Fprintf(&b, "\n %d. %s %s%s", i+1, checkbox, todo.Description, suffix)
	}
	return b.String()
}

// actionableToday reports whether a todo is eligible to be worked on
// today. A completed recurring todo stays visible only on the day it was
// scheduled for; a completed one-time todo stays visible until purged.
func actionableToday(t model.Todo, today model.Date) bool {
	if !t.Recurring() {
		return !t.ScheduledFor.After(today)
	}
	if t.Completed() {
		return t.ScheduledFor == today
	}
	return !t.ScheduledFor.After(today)
}

// renderAssigneeView renders the actionable subset of todos grouped by
// assignee display name. Group order is descending by name; it is a
// stable, arbitrary tie-break, not a ranking.
func renderAssigneeView(todos []model.Todo, members []model.ChatMember, today model.Date) string {
	nameByID := make(map[string]string, len(members))
	for _, m := range members {
		nameByID[m.ID] = m.DisplayName
	}

	groups := make(map[string][]model.Todo)
	for _, t := range todos {
		if !actionableToday(t, today) {
			continue
		}
		name, ok := nameByID[t.AssignedMember]
		if !ok {
			name = "Unknown"
		}
		groups[name] = append(groups[name], t)
	}

	if len(groups) == 0 {
		return "No todos for today :)"
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	blocks := make([]string, 0, len(names))
	for _, name := range names {
		group := groups[name]
		// Pending first, completed last, alphabetical within.
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Completed() != group[j].Completed() {
				return !group[i].Completed()
			}
			return group[i].Description < group[j].Description
		})

		var b strings.Builder
		fmt.Fprintf(&b, "Todos for %s:\n", name)
		for _, t := range group {
			checkbox := checkboxPending
			if t.Completed() {
				if *t.CompletedBy == t.AssignedMember {
					checkbox = checkboxDone
				} else {
					checkbox = checkboxDelegated
				}
			}
			delay := ""
			if t.ScheduledFor.Before(today) && !t.Completed() {
				delay = markerOverdue
			}
			fmt.Fprintf(&b, "\n%s%s %s", checkbox, delay, t.Description)
		}
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n")
}
