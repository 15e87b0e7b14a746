package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cradlekit/cradle/store"
)

func (d *DB) CreateNotification(ctx context.Context, create *store.Notification) (*store.Notification, error) {
	fields := []string{"uid", "user_id", "type", "title", "message", "priority", "scheduled_for", "is_read", "is_sent", "action_url", "metadata", "category"}
	placeholderValues := []any{
		create.UID, create.UserID, create.Type, create.Title, create.Message, create.Priority,
		create.ScheduledFor, create.IsRead, create.IsSent, create.ActionURL, create.Metadata, create.Category,
	}

	stmt := `INSERT INTO notification (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return create, nil
}

func (d *DB) ListNotifications(ctx context.Context, find *store.FindNotification) ([]*store.Notification, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "notification.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "notification.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "notification.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Type; v != nil {
		where, args = append(where, "notification.type = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.IsRead; v != nil {
		where, args = append(where, "notification.is_read = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, user_id, created_ts, updated_ts, type, title, message, priority,
			scheduled_for, is_read, is_sent, action_url, metadata, category
		FROM notification
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY notification.created_ts DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Notification, 0)
	for rows.Next() {
		var notification store.Notification
		var actionURL, metadata sql.NullString

		if err := rows.Scan(
			&notification.ID,
			&notification.UID,
			&notification.UserID,
			&notification.CreatedTs,
			&notification.UpdatedTs,
			&notification.Type,
			&notification.Title,
			&notification.Message,
			&notification.Priority,
			&notification.ScheduledFor,
			&notification.IsRead,
			&notification.IsSent,
			&actionURL,
			&metadata,
			&notification.Category,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		if actionURL.Valid {
			notification.ActionURL = &actionURL.String
		}
		if metadata.Valid {
			notification.Metadata = &metadata.String
		}
		list = append(list, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return list, nil
}

func (d *DB) UpdateNotification(ctx context.Context, update *store.UpdateNotification) error {
	set, args := []string{}, []any{}

	if v := update.IsRead; v != nil {
		set, args = append(set, "is_read = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.IsSent; v != nil {
		set, args = append(set, "is_sent = "+placeholder(len(args)+1)), append(args, *v)
	}
	if len(set) == 0 {
		return fmt.Errorf("no fields to update")
	}
	set = append(set, "updated_ts = strftime('%s', 'now')")

	stmt := `UPDATE notification SET ` + strings.Join(set, ", ") +
		` WHERE id = ` + placeholder(len(args)+1) + ` AND user_id = ` + placeholder(len(args)+2)
	args = append(args, update.ID, update.UserID)

	result, err := d.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("notification not found")
	}

	return nil
}

func (d *DB) DeleteNotification(ctx context.Context, delete *store.DeleteNotification) error {
	stmt := `DELETE FROM notification WHERE id = ` + placeholder(1) + ` AND user_id = ` + placeholder(2)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID, delete.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("notification not found")
	}

	return nil
}
