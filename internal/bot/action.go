package bot

import (
	"regexp"
	"strconv"
)

// Kind identifies the closed set of inbound chat actions. Unrecognized
// input maps to KindUnknown and never reaches the engine.
type Kind int

const (
	KindUnknown Kind = iota
	KindStart
	KindHelp
	KindAddTodo
	KindListTodos
	KindDeleteTodo
	KindCheckTodo
)

// Action is a typed intent parsed from free-text chat input.
type Action struct {
	Kind         Kind
	Description  string // KindAddTodo
	IntervalDays *int64 // KindAddTodo, nil for one-time
	Position     int    // KindDeleteTodo, KindCheckTodo (1-based)
}

var (
	startRe        = regexp.MustCompile(`(?i)^/start`)
	helpRe         = regexp.MustCompile(`(?i)^/help`)
	addRecurringRe = regexp.MustCompile(`(?i)^/add\s+every\s+([0-9]+)\s+days?:\s+(.+)$`)
	addRe          = regexp.MustCompile(`(?i)^/add\s+(.+)$`)
	listRe         = regexp.MustCompile(`(?i)^/todos`)
	deleteRe       = regexp.MustCompile(`(?i)/delete\s+([0-9]+)`)
	checkRe        = regexp.MustCompile(`(?i)/check\s+([0-9]+)`)
)

// ParseAction turns message text into a typed action. Command words are
// case-insensitive. Interval values that do not parse degrade to a
// one-time todo; positions that do not parse default to 1.
func ParseAction(text string) Action {
	switch {
	case startRe.MatchString(text):
		return Action{Kind: KindStart}
	case helpRe.MatchString(text):
		return Action{Kind: KindHelp}
	}

	if m := addRecurringRe.FindStringSubmatch(text); m != nil {
		var interval *int64
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			interval = &v
		}
		return Action{Kind: KindAddTodo, Description: m[2], IntervalDays: interval}
	}
	if m := addRe.FindStringSubmatch(text); m != nil {
		return Action{Kind: KindAddTodo, Description: m[1]}
	}
	if listRe.MatchString(text) {
		return Action{Kind: KindListTodos}
	}
	if m := deleteRe.FindStringSubmatch(text); m != nil {
		return Action{Kind: KindDeleteTodo, Position: parsePosition(m[1])}
	}
	if m := checkRe.FindStringSubmatch(text); m != nil {
		return Action{Kind: KindCheckTodo, Position: parsePosition(m[1])}
	}

	return Action{Kind: KindUnknown}
}

func parsePosition(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return n
}
