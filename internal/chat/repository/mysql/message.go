package mysql

import (
	"context"
	"database/sql"

	"mall-backend/internal/chat/repository"
	"mall-backend/internal/model"
)

// ListMessages returns the user's chat history ordered by timestamp.
func (r *implRepository) ListMessages(ctx context.Context, userID int64) ([]model.AIMessage, error) {
	const query = `
		SELECT id, user_id, role, content, timestamp
		FROM ai_messages
		WHERE user_id = ?
		ORDER BY timestamp`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var msgs []model.AIMessage
	for rows.Next() {
		var m model.AIMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			return nil, repository.ErrFailedToList
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// GetMessage retrieves a single message by ID.
// Returns zero-value AIMessage (ID == 0) when not found, do NOT return error for not-found.
func (r *implRepository) GetMessage(ctx context.Context, id int64) (model.AIMessage, error) {
	const query = `
		SELECT id, user_id, role, content, timestamp
		FROM ai_messages
		WHERE id = ?
		LIMIT 1`

	var m model.AIMessage
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.Timestamp)
	if err == sql.ErrNoRows {
		return model.AIMessage{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMessage"), err)
		return model.AIMessage{}, repository.ErrFailedToGet
	}
	return m, nil
}

// SaveMessage inserts a chat turn unconditionally.
func (r *implRepository) SaveMessage(ctx context.Context, opt repository.SaveMessageOptions) (model.AIMessage, error) {
	const query = `
		INSERT INTO ai_messages (user_id, role, content, timestamp)
		VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, opt.UserID, opt.Role, opt.Content, opt.Timestamp)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveMessage"), err)
		return model.AIMessage{}, repository.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s last insert id: %v", r.dsn("SaveMessage"), err)
		return model.AIMessage{}, repository.ErrFailedToInsert
	}

	return model.AIMessage{
		ID:        id,
		UserID:    opt.UserID,
		Role:      opt.Role,
		Content:   opt.Content,
		Timestamp: opt.Timestamp,
	}, nil
}

// DeleteMessage removes a message by ID.
func (r *implRepository) DeleteMessage(ctx context.Context, id int64) error {
	const query = `DELETE FROM ai_messages WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMessage"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// DedupeAndSave checks the trailing window for an identical-content message
// from the same user before inserting. Read-then-write with no cross-request
// isolation: under concurrent duplicates at most one extra row may land,
// which is accepted best-effort behavior.
func (r *implRepository) DedupeAndSave(ctx context.Context, opt repository.DedupeAndSaveOptions) (bool, error) {
	const dupQuery = `
		SELECT id FROM ai_messages
		WHERE user_id = ? AND content = ? AND timestamp >= ?
		LIMIT 1`

	cutoff := opt.Timestamp - opt.Window.Milliseconds()

	var dupID int64
	err := r.db.QueryRowContext(ctx, dupQuery, opt.UserID, opt.Content, cutoff).Scan(&dupID)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		r.l.Errorf(ctx, "%s dedup check: %v", r.dsn("DedupeAndSave"), err)
		return false, repository.ErrFailedToInsert
	}

	if _, err := r.SaveMessage(ctx, repository.SaveMessageOptions{
		UserID:    opt.UserID,
		Role:      opt.Role,
		Content:   opt.Content,
		Timestamp: opt.Timestamp,
	}); err != nil {
		return false, err
	}
	return true, nil
}
