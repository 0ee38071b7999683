// Package roster maintains the set of participants per chat group and
// supplies uniformly random participant selection for todo assignment.
package roster

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/nhle/chorebot/internal/model"
	"github.com/nhle/chorebot/internal/store"
)

// ErrNoMembers is returned when an assignment is attempted on a chat with
// no registered members.
var ErrNoMembers = errors.New("no members registered in chat")

// Registry registers chat members on first sight and draws random
// assignees. It keeps no fairness state: every draw is an independent
// uniform choice over the chat's current members.
type Registry struct {
	store store.Store
}

// New creates a Registry backed by the given store.
func New(s store.Store) *Registry {
	return &Registry{store: s}
}

// Register records a chat member if (chatID, userID) has not been seen
// before and returns the stored member. Registering an existing member is
// a no-op.
func (r *Registry) Register(
	ctx context.Context,
	chatID, userID int64,
	displayName string,
) (*model.ChatMember, error) {
	existing, err := r.store.GetMemberByUserID(ctx, chatID, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up chat member: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	m := model.ChatMember{
		ChatID:      chatID,
		UserID:      userID,
		DisplayName: displayName,
	}
	if err := r.store.CreateMember(ctx, m); err != nil {
		return nil, fmt.Errorf("registering chat member: %w", err)
	}

	created, err := r.store.GetMemberByUserID(ctx, chatID, userID)
	if err != nil {
		return nil, fmt.Errorf("reading back chat member: %w", err)
	}
	return created, nil
}

// RandomMember selects a member of the chat uniformly at random, with the
// randomness source re-seeded on every call. Returns ErrNoMembers when the
// chat has no registered members.
func (r *Registry) RandomMember(ctx context.Context, chatID int64) (*model.ChatMember, error) {
	members, err := r.store.GetMembers(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("fetching members of chat %d: %w", chatID, err)
	}
	if len(members) == 0 {
		return nil, ErrNoMembers
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	m := members[rng.Intn(len(members))]
	return &m, nil
}
