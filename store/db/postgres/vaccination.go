package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cradlekit/cradle/store"
)

func (d *DB) CreateVaccination(ctx context.Context, create *store.Vaccination) (*store.Vaccination, error) {
	if create.Status == "" {
		create.Status = store.VaccinationScheduled
	}

	fields := []string{
		"uid", "user_id", "name", "scheduled_date", "status",
		"description", "complete_date", "notes", "document", "age_months", "is_standard",
	}
	placeholderValues := []any{
		create.UID, create.UserID, create.Name, create.ScheduledDate, create.Status,
		create.Description, create.CompleteDate, create.Notes, create.Document, create.AgeMonths, create.IsStandard,
	}

	stmt := `INSERT INTO vaccination (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create vaccination: %w", err)
	}

	return create, nil
}

func (d *DB) ListVaccinations(ctx context.Context, find *store.FindVaccination) ([]*store.Vaccination, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "vaccination.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "vaccination.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "vaccination.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Status; v != nil {
		where, args = append(where, "vaccination.status = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, user_id, created_ts, updated_ts, name, scheduled_date, status,
			description, complete_date, notes, document, age_months, is_standard
		FROM vaccination
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY vaccination.scheduled_date ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vaccinations: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Vaccination, 0)
	for rows.Next() {
		var vaccination store.Vaccination
		var description, completeDate, notes, document sql.NullString
		var ageMonths sql.NullInt32

		if err := rows.Scan(
			&vaccination.ID,
			&vaccination.UID,
			&vaccination.UserID,
			&vaccination.CreatedTs,
			&vaccination.UpdatedTs,
			&vaccination.Name,
			&vaccination.ScheduledDate,
			&vaccination.Status,
			&description,
			&completeDate,
			&notes,
			&document,
			&ageMonths,
			&vaccination.IsStandard,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vaccination: %w", err)
		}

		if description.Valid {
			vaccination.Description = &description.String
		}
		if completeDate.Valid {
			vaccination.CompleteDate = &completeDate.String
		}
		if notes.Valid {
			vaccination.Notes = &notes.String
		}
		if document.Valid {
			vaccination.Document = &document.String
		}
		if ageMonths.Valid {
			vaccination.AgeMonths = &ageMonths.Int32
		}
		list = append(list, &vaccination)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vaccinations: %w", err)
	}

	return list, nil
}

func (d *DB) UpdateVaccination(ctx context.Context, update *store.UpdateVaccination) error {
	set, args := []string{}, []any{}

	if v := update.Name; v != nil {
		set, args = append(set, "name = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.ScheduledDate; v != nil {
		set, args = append(set, "scheduled_date = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Status; v != nil {
		set, args = append(set, "status = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Description; v != nil {
		set, args = append(set, "description = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.CompleteDate; v != nil {
		set, args = append(set, "complete_date = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Notes; v != nil {
		set, args = append(set, "notes = "+placeholder(len(args)+1)), append(args, *v)
	}

	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_ts = EXTRACT(EPOCH FROM NOW())")
	args = append(args, update.ID, update.UserID)

	stmt := `UPDATE vaccination SET ` + strings.Join(set, ", ") +
		` WHERE id = ` + placeholder(len(args)-1) + ` AND user_id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to update vaccination: %w", err)
	}

	return nil
}

func (d *DB) DeleteVaccination(ctx context.Context, delete *store.DeleteVaccination) error {
	stmt := `DELETE FROM vaccination WHERE id = ` + placeholder(1) + ` AND user_id = ` + placeholder(2)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID, delete.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete vaccination: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("vaccination not found")
	}

	return nil
}
