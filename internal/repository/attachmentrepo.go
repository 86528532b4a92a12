package repository

import (
	"context"

	"github.com/andrewch/contactbook/internal/model"
)

// AttachmentRepository persists attachment metadata. The byte payload lives in
// the filestore under the row's store key.
type AttachmentRepository interface {
	// Create inserts a metadata row and returns the new attachment id.
	Create(ctx context.Context, info model.AttachmentInfo, storeKey string) (int, error)

	// UpdateInfo overwrites displayable metadata; the store key is untouched.
	UpdateInfo(ctx context.Context, info model.AttachmentInfo) error

	// Delete removes the metadata row.
	Delete(ctx context.Context, attachmentID int) error

	// GetStoreKey returns the filestore key of an attachment.
	GetStoreKey(ctx context.Context, attachmentID int) (string, error)

	// ListByContact returns metadata for all attachments of a contact.
	ListByContact(ctx context.Context, contactID int) ([]model.AttachmentInfo, error)
}
