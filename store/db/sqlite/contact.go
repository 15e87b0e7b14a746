package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cradlekit/cradle/store"
)

func (d *DB) CreateContact(ctx context.Context, create *store.Contact) (*store.Contact, error) {
	fields := []string{"uid", "user_id", "name", "category", "type", "value", "description"}
	placeholderValues := []any{
		create.UID, create.UserID, create.Name, create.Category, create.Type, create.Value, create.Description,
	}

	stmt := `INSERT INTO contact (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return create, nil
}

func (d *DB) ListContacts(ctx context.Context, find *store.FindContact) ([]*store.Contact, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "contact.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "contact.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "contact.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, user_id, created_ts, updated_ts, name, category, type, value, description
		FROM contact
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY contact.name ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Contact, 0)
	for rows.Next() {
		var contact store.Contact
		var description sql.NullString

		if err := rows.Scan(
			&contact.ID,
			&contact.UID,
			&contact.UserID,
			&contact.CreatedTs,
			&contact.UpdatedTs,
			&contact.Name,
			&contact.Category,
			&contact.Type,
			&contact.Value,
			&description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}

		if description.Valid {
			contact.Description = &description.String
		}
		list = append(list, &contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return list, nil
}

func (d *DB) DeleteContact(ctx context.Context, delete *store.DeleteContact) error {
	stmt := `DELETE FROM contact WHERE id = ` + placeholder(1) + ` AND user_id = ` + placeholder(2)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID, delete.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("contact not found")
	}

	return nil
}
