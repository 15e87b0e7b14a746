package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cradlekit/cradle/store"
)

func (d *DB) CreateGrowthEntry(ctx context.Context, create *store.GrowthEntry) (*store.GrowthEntry, error) {
	fields := []string{"uid", "user_id", "date", "height", "weight", "head", "comment"}
	placeholderValues := []any{
		create.UID, create.UserID, create.Date, create.Height, create.Weight, create.Head, create.Comment,
	}

	stmt := `INSERT INTO growth (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create growth entry: %w", err)
	}

	return create, nil
}

func (d *DB) ListGrowthEntries(ctx context.Context, find *store.FindGrowthEntry) ([]*store.GrowthEntry, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "growth.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "growth.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "growth.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, user_id, created_ts, updated_ts, date, height, weight, head, comment
		FROM growth
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY growth.date DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query growth entries: %w", err)
	}
	defer rows.Close()

	list := make([]*store.GrowthEntry, 0)
	for rows.Next() {
		var entry store.GrowthEntry
		var height, weight, head sql.NullFloat64
		var comment sql.NullString

		if err := rows.Scan(
			&entry.ID,
			&entry.UID,
			&entry.UserID,
			&entry.CreatedTs,
			&entry.UpdatedTs,
			&entry.Date,
			&height,
			&weight,
			&head,
			&comment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan growth entry: %w", err)
		}

		if height.Valid {
			entry.Height = &height.Float64
		}
		if weight.Valid {
			entry.Weight = &weight.Float64
		}
		if head.Valid {
			entry.Head = &head.Float64
		}
		if comment.Valid {
			entry.Comment = &comment.String
		}
		list = append(list, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate growth entries: %w", err)
	}

	return list, nil
}

func (d *DB) DeleteGrowthEntry(ctx context.Context, delete *store.DeleteGrowthEntry) error {
	stmt := `DELETE FROM growth WHERE id = ` + placeholder(1) + ` AND user_id = ` + placeholder(2)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID, delete.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete growth entry: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("growth entry not found")
	}

	return nil
}
