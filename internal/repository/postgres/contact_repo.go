package postgres

import (
	"context"

	"github.com/andrewch/contactbook/internal/errs"
	"github.com/andrewch/contactbook/internal/model"
)

// ContactRepo implements ContactRepository using PostgreSQL.
type ContactRepo struct{ db *DB }

// NewContactRepo constructs a contact repository.
func NewContactRepo(db *DB) *ContactRepo { return &ContactRepo{db: db} }

// Update overwrites all editable fields of an existing contact, address
// columns included. Returns errs.ErrNotFound when the id references no row.
func (r *ContactRepo) Update(ctx context.Context, c model.Contact) error {
	const q = `
UPDATE contacts
SET name=$2, surname=$3, patronymic=$4, birthday=$5, nationality=$6,
    gender=$7, marital_status=$8, web_site=$9, email=$10, place_of_work=$11,
    country=$12, city=$13, street=$14, house_number=$15, flat_number=$16, zip_code=$17
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, c.ID,
		c.Name, c.Surname, c.Patronymic, c.Birthday, c.Nationality,
		c.Gender, c.MaritalStatus, c.WebSite, c.Email, c.PlaceOfWork,
		c.Address.Country, c.Address.City, c.Address.Street,
		c.Address.HouseNumber, c.Address.FlatNumber, c.Address.ZipCode)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// UpdatePhoto sets the photo reference for a contact.
func (r *ContactRepo) UpdatePhoto(ctx context.Context, contactID int, photo string) error {
	const q = `UPDATE contacts SET photo=$2 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, contactID, photo)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Exists reports whether the contact id references a stored row.
func (r *ContactRepo) Exists(ctx context.Context, contactID int) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM contacts WHERE id=$1)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, contactID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
