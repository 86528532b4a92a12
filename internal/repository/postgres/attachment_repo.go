package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/andrewch/contactbook/internal/errs"
	"github.com/andrewch/contactbook/internal/model"
)

// AttachmentRepo implements AttachmentRepository using PostgreSQL.
type AttachmentRepo struct{ db *DB }

// NewAttachmentRepo constructs an attachment repository.
func NewAttachmentRepo(db *DB) *AttachmentRepo { return &AttachmentRepo{db: db} }

// Create inserts a metadata row and returns the new attachment id.
func (r *AttachmentRepo) Create(ctx context.Context, info model.AttachmentInfo, storeKey string) (int, error) {
	const q = `
INSERT INTO attachments (contact_id, file_name, comment, upload_date, store_key)
VALUES ($1,$2,$3,$4,$5) RETURNING id`
	var id int
	err := r.db.Pool.QueryRow(ctx, q,
		info.ContactID, info.FileName, info.Comment, info.UploadDate, storeKey).Scan(&id)
	return id, err
}

// UpdateInfo overwrites displayable metadata of an attachment.
func (r *AttachmentRepo) UpdateInfo(ctx context.Context, info model.AttachmentInfo) error {
	const q = `UPDATE attachments SET file_name=$2, comment=$3 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, info.AttachmentID, info.FileName, info.Comment)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes the metadata row.
func (r *AttachmentRepo) Delete(ctx context.Context, attachmentID int) error {
	const q = `DELETE FROM attachments WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, attachmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// GetStoreKey returns the filestore key of an attachment.
func (r *AttachmentRepo) GetStoreKey(ctx context.Context, attachmentID int) (string, error) {
	const q = `SELECT store_key FROM attachments WHERE id=$1`
	var key string
	if err := r.db.Pool.QueryRow(ctx, q, attachmentID).Scan(&key); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	return key, nil
}

// ListByContact returns metadata for all attachments of a contact ordered by id.
func (r *AttachmentRepo) ListByContact(ctx context.Context, contactID int) ([]model.AttachmentInfo, error) {
	const q = `
SELECT id, contact_id, file_name, comment, upload_date
FROM attachments WHERE contact_id=$1 ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AttachmentInfo
	for rows.Next() {
		var a model.AttachmentInfo
		if err = rows.Scan(&a.AttachmentID, &a.ContactID, &a.FileName, &a.Comment, &a.UploadDate); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
