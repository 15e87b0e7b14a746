package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cradlekit/cradle/store"
)

func (d *DB) CreateSleep(ctx context.Context, create *store.Sleep) (*store.Sleep, error) {
	fields := []string{"uid", "user_id", "baby_name", "time", "type", "duration", "date", "mood", "notes"}
	placeholderValues := []any{
		create.UID, create.UserID, create.BabyName, create.Time, create.Type,
		create.Duration, create.Date, create.Mood, create.Notes,
	}

	stmt := `INSERT INTO sleep (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create sleep: %w", err)
	}

	return create, nil
}

func (d *DB) ListSleeps(ctx context.Context, find *store.FindSleep) ([]*store.Sleep, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "sleep.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "sleep.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "sleep.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Date; v != nil {
		where, args = append(where, "sleep.date = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, user_id, created_ts, updated_ts, baby_name, time, type, duration, date, mood, notes
		FROM sleep
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY sleep.created_ts DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sleeps: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Sleep, 0)
	for rows.Next() {
		var sleep store.Sleep
		var mood, notes sql.NullString

		if err := rows.Scan(
			&sleep.ID,
			&sleep.UID,
			&sleep.UserID,
			&sleep.CreatedTs,
			&sleep.UpdatedTs,
			&sleep.BabyName,
			&sleep.Time,
			&sleep.Type,
			&sleep.Duration,
			&sleep.Date,
			&mood,
			&notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sleep: %w", err)
		}

		if mood.Valid {
			sleep.Mood = &mood.String
		}
		if notes.Valid {
			sleep.Notes = &notes.String
		}
		list = append(list, &sleep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sleeps: %w", err)
	}

	return list, nil
}

func (d *DB) DeleteSleep(ctx context.Context, delete *store.DeleteSleep) error {
	stmt := `DELETE FROM sleep WHERE id = ` + placeholder(1) + ` AND user_id = ` + placeholder(2)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID, delete.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete sleep: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("sleep not found")
	}

	return nil
}
