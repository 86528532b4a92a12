package postgres

import (
	"context"

	"github.com/andrewch/contactbook/internal/errs"
	"github.com/andrewch/contactbook/internal/model"
)

// PhoneRepo implements PhoneRepository using PostgreSQL.
type PhoneRepo struct{ db *DB }

// NewPhoneRepo constructs a phone repository.
func NewPhoneRepo(db *DB) *PhoneRepo { return &PhoneRepo{db: db} }

// Create inserts a new phone row and returns its id.
func (r *PhoneRepo) Create(ctx context.Context, p model.Phone) (int, error) {
	const q = `
INSERT INTO phones (contact_id, type, country_code, operator_code, number, comment)
VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	var id int
	err := r.db.Pool.QueryRow(ctx, q,
		p.ContactID, p.Type, p.CountryCode, p.OperatorCode, p.Number, p.Comment).Scan(&id)
	return id, err
}

// Update overwrites an existing phone row.
func (r *PhoneRepo) Update(ctx context.Context, p model.Phone) error {
	const q = `
UPDATE phones
SET type=$2, country_code=$3, operator_code=$4, number=$5, comment=$6
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, p.ID, p.Type, p.CountryCode, p.OperatorCode, p.Number, p.Comment)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a phone row.
func (r *PhoneRepo) Delete(ctx context.Context, phoneID int) error {
	const q = `DELETE FROM phones WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, phoneID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListByContact returns all phones of a contact ordered by id.
func (r *PhoneRepo) ListByContact(ctx context.Context, contactID int) ([]model.Phone, error) {
	const q = `
SELECT id, contact_id, type, country_code, operator_code, number, comment
FROM phones WHERE contact_id=$1 ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Phone
	for rows.Next() {
		var p model.Phone
		if err = rows.Scan(&p.ID, &p.ContactID, &p.Type, &p.CountryCode, &p.OperatorCode, &p.Number, &p.Comment); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
