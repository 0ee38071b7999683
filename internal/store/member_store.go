package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/chorebot/internal/model"
)

// CreateMember inserts a new chat member. Generates a UUID if ID is empty.
// Uniqueness of (chat_id, user_id) is enforced by the schema; callers that
// want upsert-if-absent semantics go through the roster.
func (s *SQLiteStore) CreateMember(ctx context.Context, m model.ChatMember) error {
	if strings.TrimSpace(m.DisplayName) == "" {
		return fmt.Errorf("member display name must not be empty")
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_members (id, chat_id, user_id, display_name, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.ChatID, m.UserID, m.DisplayName, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating chat member: %w", err)
	}
	return nil
}

// GetMemberByUserID retrieves the member registered for (chatID, userID).
// Returns nil without error when the user is not registered in the chat.
func (s *SQLiteStore) GetMemberByUserID(
	ctx context.Context,
	chatID, userID int64,
) (*model.ChatMember, error) {
	var m model.ChatMember
	err := s.db.QueryRowxContext(ctx,
		"SELECT * FROM chat_members WHERE chat_id = ? AND user_id = ?",
		chatID, userID,
	).Scan(&m.ID, &m.ChatID, &m.UserID, &m.DisplayName, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting member %d of chat %d: %w", userID, chatID, err)
	}
	return &m, nil
}

// GetMembers returns all members of a chat.
func (s *SQLiteStore) GetMembers(ctx context.Context, chatID int64) ([]model.ChatMember, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM chat_members WHERE chat_id = ? ORDER BY created_at",
		chatID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying members of chat %d: %w", chatID, err)
	}
	defer rows.Close()

	var members []model.ChatMember
	for rows.Next() {
		var m model.ChatMember
		if err := rows.Scan(&m.ID, &m.ChatID, &m.UserID, &m.DisplayName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chat member row: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
