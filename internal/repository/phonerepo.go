package repository

import (
	"context"

	"github.com/andrewch/contactbook/internal/model"
)

// PhoneRepository persists a contact's phone collection.
type PhoneRepository interface {
	// Create inserts a new phone row and returns its id.
	Create(ctx context.Context, p model.Phone) (int, error)

	// Update overwrites an existing phone row.
	Update(ctx context.Context, p model.Phone) error

	// Delete removes a phone row.
	Delete(ctx context.Context, phoneID int) error

	// ListByContact returns all phones of a contact.
	ListByContact(ctx context.Context, contactID int) ([]model.Phone, error)
}
