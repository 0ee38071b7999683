package model

import "time"

// ChatMember is a registered participant of a chat group, eligible for
// random todo assignment. (ChatID, UserID) is unique: a person is
// registered at most once per chat. Members are created lazily on their
// first observed message and never deleted or mutated afterwards.
type ChatMember struct {
	ID          string    `json:"id" db:"id"`
	ChatID      int64     `json:"chat_id" db:"chat_id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
