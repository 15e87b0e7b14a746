package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cradlekit/cradle/store"
)

func (d *DB) CreateEssential(ctx context.Context, create *store.Essential) (*store.Essential, error) {
	if create.Category == "" {
		create.Category = "others"
	}

	fields := []string{"uid", "user_id", "name", "category", "current_stock", "min_threshold", "unit", "notes"}
	placeholderValues := []any{
		create.UID, create.UserID, create.Name, create.Category,
		create.CurrentStock, create.MinThreshold, create.Unit, create.Notes,
	}

	stmt := `INSERT INTO essential (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create essential: %w", err)
	}

	return create, nil
}

func (d *DB) ListEssentials(ctx context.Context, find *store.FindEssential) ([]*store.Essential, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "essential.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "essential.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "essential.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, user_id, created_ts, updated_ts, name, category, current_stock, min_threshold, unit, notes
		FROM essential
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY essential.name ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query essentials: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Essential, 0)
	for rows.Next() {
		var essential store.Essential
		var unit, notes sql.NullString

		if err := rows.Scan(
			&essential.ID,
			&essential.UID,
			&essential.UserID,
			&essential.CreatedTs,
			&essential.UpdatedTs,
			&essential.Name,
			&essential.Category,
			&essential.CurrentStock,
			&essential.MinThreshold,
			&unit,
			&notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan essential: %w", err)
		}

		if unit.Valid {
			essential.Unit = &unit.String
		}
		if notes.Valid {
			essential.Notes = &notes.String
		}
		list = append(list, &essential)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate essentials: %w", err)
	}

	return list, nil
}

func (d *DB) UpdateEssential(ctx context.Context, update *store.UpdateEssential) error {
	set, args := []string{}, []any{}

	if v := update.Name; v != nil {
		set, args = append(set, "name = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Category; v != nil {
		set, args = append(set, "category = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.CurrentStock; v != nil {
		set, args = append(set, "current_stock = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.MinThreshold; v != nil {
		set, args = append(set, "min_threshold = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Unit; v != nil {
		set, args = append(set, "unit = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Notes; v != nil {
		set, args = append(set, "notes = "+placeholder(len(args)+1)), append(args, *v)
	}

	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_ts = EXTRACT(EPOCH FROM NOW())")
	args = append(args, update.ID, update.UserID)

	stmt := `UPDATE essential SET ` + strings.Join(set, ", ") +
		` WHERE id = ` + placeholder(len(args)-1) + ` AND user_id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to update essential: %w", err)
	}

	return nil
}

func (d *DB) DeleteEssential(ctx context.Context, delete *store.DeleteEssential) error {
	stmt := `DELETE FROM essential WHERE id = ` + placeholder(1) + ` AND user_id = ` + placeholder(2)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID, delete.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete essential: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("essential not found")
	}

	return nil
}
