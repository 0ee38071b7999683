package bot

import "testing"

func TestParseAction(t *testing.T) {
	cases := []struct {
		text string
		want Action
	}{
		{"/start", Action{Kind: KindStart}},
		{"/START", Action{Kind: KindStart}},
		{"/help", Action{Kind: KindHelp}},
		{"/add buy milk", Action{Kind: KindAddTodo, Description: "buy milk"}},
		{"/Add Buy Milk", Action{Kind: KindAddTodo, Description: "Buy Milk"}},
		{"/add every 7 days: take out trash", Action{Kind: KindAddTodo, Description: "take out trash", IntervalDays: ptr(7)}},
		{"/add every 1 day: water plants", Action{Kind: KindAddTodo, Description: "water plants", IntervalDays: ptr(1)}},
		{"/todos", Action{Kind: KindListTodos}},
		{"/delete 2", Action{Kind: KindDeleteTodo, Position: 2}},
		{"/check 3", Action{Kind: KindCheckTodo, Position: 3}},
		{"/check", Action{Kind: KindUnknown}},
		{"/delete", Action{Kind: KindUnknown}},
		{"/add", Action{Kind: KindUnknown}},
		{"hello there", Action{Kind: KindUnknown}},
		{"", Action{Kind: KindUnknown}},
	}

	for _, c := range cases {
		got := ParseAction(c.text)
		if got.Kind != c.want.Kind {
			t.Errorf("%q: expected kind %d, got %d", c.text, c.want.Kind, got.Kind)
			continue
		}
		if got.Description != c.want.Description {
			t.Errorf("%q: expected description %q, got %q", c.text, c.want.Description, got.Description)
		}
		if got.Position != c.want.Position {
			t.Errorf("%q: expected position %d, got %d", c.text, c.want.Position, got.Position)
		}
		if (got.IntervalDays == nil) != (c.want.IntervalDays == nil) {
			t.Errorf("%q: interval presence mismatch", c.text)
		} else if got.IntervalDays != nil && *got.IntervalDays != *c.want.IntervalDays {
			t.Errorf("%q: expected interval %d, got %d", c.text, *c.want.IntervalDays, *got.IntervalDays)
		}
	}
}

func TestParseActionRecurringBeforePlain(t *testing.T) {
	// "every N days:" input must not fall through to the one-time form
	// with the schedule text kept inside the description.
	got := ParseAction("/add every 14 days: clean bathroom")
	if got.IntervalDays == nil || *got.IntervalDays != 14 {
		t.Fatalf("expected interval 14, got %v", got.IntervalDays)
	}
	if got.Description != "clean bathroom" {
		t.Fatalf("expected bare description, got %q", got.Description)
	}
}

func ptr(n int64) *int64 { return &n }
