package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cradlekit/cradle/store"
)

func (d *DB) CreateMemory(ctx context.Context, create *store.Memory) (*store.Memory, error) {
	fields := []string{"uid", "user_id", "title", "description", "type", "file_url", "tags", "is_public"}
	placeholderValues := []any{
		create.UID, create.UserID, create.Title, create.Description,
		create.Type, create.FileURL, create.Tags, create.IsPublic,
	}

	stmt := `INSERT INTO memory (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}

	return create, nil
}

func (d *DB) ListMemories(ctx context.Context, find *store.FindMemory) ([]*store.Memory, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "memory.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "memory.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "memory.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, user_id, created_ts, updated_ts, title, description, type, file_url, tags, is_public
		FROM memory
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY memory.created_ts DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query memories: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Memory, 0)
	for rows.Next() {
		var memory store.Memory
		var tags sql.NullString

		if err := rows.Scan(
			&memory.ID,
			&memory.UID,
			&memory.UserID,
			&memory.CreatedTs,
			&memory.UpdatedTs,
			&memory.Title,
			&memory.Description,
			&memory.Type,
			&memory.FileURL,
			&tags,
			&memory.IsPublic,
		); err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}

		if tags.Valid {
			memory.Tags = &tags.String
		}
		list = append(list, &memory)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memories: %w", err)
	}

	return list, nil
}

func (d *DB) DeleteMemory(ctx context.Context, delete *store.DeleteMemory) error {
	stmt := `DELETE FROM memory WHERE id = ` + placeholder(1) + ` AND user_id = ` + placeholder(2)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID, delete.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("memory not found")
	}

	return nil
}
