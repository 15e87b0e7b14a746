package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cradlekit/cradle/store"
)

func (d *DB) CreateFeeding(ctx context.Context, create *store.Feeding) (*store.Feeding, error) {
	fields := []string{"uid", "user_id", "time", "type", "amount", "notes"}
	placeholderValues := []any{create.UID, create.UserID, create.Time, create.Type, create.Amount, create.Notes}

	stmt := `INSERT INTO feeding (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create feeding: %w", err)
	}

	return create, nil
}

func (d *DB) ListFeedings(ctx context.Context, find *store.FindFeeding) ([]*store.Feeding, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "feeding.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "feeding.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "feeding.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, user_id, created_ts, updated_ts, time, type, amount, notes
		FROM feeding
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY feeding.created_ts DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedings: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Feeding, 0)
	for rows.Next() {
		var feeding store.Feeding
		var notes sql.NullString

		if err := rows.Scan(
			&feeding.ID,
			&feeding.UID,
			&feeding.UserID,
			&feeding.CreatedTs,
			&feeding.UpdatedTs,
			&feeding.Time,
			&feeding.Type,
			&feeding.Amount,
			&notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feeding: %w", err)
		}

		if notes.Valid {
			feeding.Notes = &notes.String
		}
		list = append(list, &feeding)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedings: %w", err)
	}

	return list, nil
}

func (d *DB) UpdateFeeding(ctx context.Context, update *store.UpdateFeeding) error {
	set, args := []string{}, []any{}

	if v := update.Time; v != nil {
		set, args = append(set, "time = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Type; v != nil {
		set, args = append(set, "type = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Amount; v != nil {
		set, args = append(set, "amount = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Notes; v != nil {
		set, args = append(set, "notes = "+placeholder(len(args)+1)), append(args, *v)
	}

	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_ts = strftime('%s', 'now')")
	args = append(args, update.ID, update.UserID)

	stmt := `UPDATE feeding SET ` + strings.Join(set, ", ") +
		` WHERE id = ` + placeholder(len(args)-1) + ` AND user_id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to update feeding: %w", err)
	}

	return nil
}

func (d *DB) DeleteFeeding(ctx context.Context, delete *store.DeleteFeeding) error {
	stmt := `DELETE FROM feeding WHERE id = ` + placeholder(1) + ` AND user_id = ` + placeholder(2)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID, delete.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete feeding: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("feeding not found")
	}

	return nil
}
