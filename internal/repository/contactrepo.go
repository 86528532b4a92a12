package repository

import (
	"context"

	"github.com/andrewch/contactbook/internal/model"
)

// ContactRepository persists contacts and their embedded address.
type ContactRepository interface {
	// Update overwrites all editable fields of an existing contact.
	Update(ctx context.Context, c model.Contact) error

	// UpdatePhoto sets the photo reference for a contact.
	UpdatePhoto(ctx context.Context, contactID int, photo string) error

	// Exists reports whether the contact id references a stored row.
	Exists(ctx context.Context, contactID int) (bool, error)
}
