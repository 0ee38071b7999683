package store_test

import (
	"context"
	"testing"

	"github.com/nhle/chorebot/internal/model"
	"github.com/nhle/chorebot/internal/testutil"
)

func TestCreateAndGetMember(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	seeded := testutil.SeedMember(t, s, 1, 100, "alice")

	got, err := s.GetMemberByUserID(ctx, 1, 100)
	if err != nil {
		t.Fatalf("GetMemberByUserID: %v", err)
	}
	if got == nil || got.ID != seeded.ID || got.DisplayName != "alice" {
		t.Fatalf("expected seeded member back, got %+v", got)
	}

	absent, err := s.GetMemberByUserID(ctx, 1, 999)
	if err != nil {
		t.Fatalf("GetMemberByUserID(absent): %v", err)
	}
	if absent != nil {
		t.Fatalf("expected nil for unregistered user, got %+v", absent)
	}
}

func TestCreateMemberEnforcesUniquePair(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	testutil.SeedMember(t, s, 1, 100, "alice")
	err := s.CreateMember(ctx, model.ChatMember{ChatID: 1, UserID: 100, DisplayName: "alice again"})
	if err == nil {
		t.Fatalf("expected unique constraint error for duplicate (chat, user)")
	}

	// Same user in another chat is a distinct registration.
	if err := s.CreateMember(ctx, model.ChatMember{ChatID: 2, UserID: 100, DisplayName: "alice"}); err != nil {
		t.Fatalf("registering same user in another chat: %v", err)
	}
}

func TestGetMembersIsChatScoped(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	testutil.SeedMember(t, s, 1, 100, "alice")
	testutil.SeedMember(t, s, 1, 200, "bob")
	testutil.SeedMember(t, s, 2, 300, "carol")

	members, err := s.GetMembers(ctx, 1)
	if err != nil {
		t.Fatalf("GetMembers: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members in chat 1, got %d", len(members))
	}
	for _, m := range members {
		if m.ChatID != 1 {
			t.Errorf("member %s leaked from chat %d", m.DisplayName, m.ChatID)
		}
	}

	empty, err := s.GetMembers(ctx, 3)
	if err != nil {
		t.Fatalf("GetMembers(empty chat): %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no members in chat 3, got %d", len(empty))
	}
}
