package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS chat_members (
	id           TEXT PRIMARY KEY,
	chat_id      INTEGER NOT NULL,
	user_id      INTEGER NOT NULL,
	display_name TEXT NOT NULL,
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(chat_id, user_id)
);

CREATE TABLE IF NOT EXISTS todos (
	id              TEXT PRIMARY KEY,
	chat_id         INTEGER NOT NULL,
	description     TEXT NOT NULL,
	interval_days   INTEGER CHECK(interval_days IS NULL OR interval_days BETWEEN 1 AND 999),
	assigned_member TEXT NOT NULL REFERENCES chat_members(id),
	scheduled_for   TEXT NOT NULL,
	completed_by    TEXT REFERENCES chat_members(id),
	created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_chat_members_chat_id ON chat_members(chat_id);
CREATE INDEX IF NOT EXISTS idx_todos_chat_id ON todos(chat_id);
CREATE INDEX IF NOT EXISTS idx_todos_scheduled_for ON todos(scheduled_for);
CREATE INDEX IF NOT EXISTS idx_todos_completed_by ON todos(completed_by);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
