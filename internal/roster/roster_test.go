package roster_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nhle/chorebot/internal/roster"
	"github.com/nhle/chorebot/internal/testutil"
)

func TestRegisterIsIdempotent(t *testing.T) {
	s := testutil.NewTestStore(t)
	r := roster.New(s)
	ctx := context.Background()

	first, err := r.Register(ctx, 1, 100, "alice")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	second, err := r.Register(ctx, 1, 100, "alice renamed")
	if err != nil {
		t.Fatalf("second register: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("re-registering created a new member")
	}
	// Display name is fixed at first sight.
	if second.DisplayName != "alice" {
		t.Errorf("expected display name %q, got %q", "alice", second.DisplayName)
	}

	members, err := s.GetMembers(ctx, 1)
	if err != nil {
		t.Fatalf("GetMembers: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member after duplicate register, got %d", len(members))
	}
}

func TestRandomMemberEmptyChat(t *testing.T) {
	s := testutil.NewTestStore(t)
	r := roster.New(s)

	_, err := r.RandomMember(context.Background(), 42)
	if !errors.Is(err, roster.ErrNoMembers) {
		t.Fatalf("expected ErrNoMembers, got %v", err)
	}
}

func TestRandomMemberStaysInChat(t *testing.T) {
	s := testutil.NewTestStore(t)
	r := roster.New(s)
	ctx := context.Background()

	inChat := map[string]bool{
		testutil.SeedMember(t, s, 1, 100, "alice").ID: true,
		testutil.SeedMember(t, s, 1, 200, "bob").ID:   true,
		testutil.SeedMember(t, s, 1, 300, "carol").ID: true,
	}
	testutil.SeedMember(t, s, 2, 400, "mallory")

	for i := 0; i < 50; i++ {
		m, err := r.RandomMember(ctx, 1)
		if err != nil {
			t.Fatalf("RandomMember: %v", err)
		}
		if !inChat[m.ID] {
			t.Fatalf("drew member %s from the wrong chat", m.DisplayName)
		}
	}
}
