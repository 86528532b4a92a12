package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrewch/contactbook/internal/errs"
	"github.com/andrewch/contactbook/internal/filestore"
	"github.com/andrewch/contactbook/internal/model"
	"github.com/andrewch/contactbook/internal/repository"
)

// AttachmentService owns the attachment lifecycle: payloads in the filestore,
// metadata in the repository.
type AttachmentService interface {
	// Create stores the payload and inserts the metadata row, returning the
	// new attachment id. The payload reader is fully consumed.
	Create(ctx context.Context, a model.Attachment) (int, error)
	// Update overwrites displayable metadata; the payload is untouched.
	Update(ctx context.Context, info model.AttachmentInfo) error
	// Delete removes payload and metadata. Both removals are attempted even
	// if one fails; the first failure is returned.
	Delete(ctx context.Context, attachmentID int) error
	// Apply processes edit/deleted directives. Failures are logged and
	// swallowed: directives never fail the surrounding request.
	Apply(ctx context.Context, infos []model.AttachmentInfo)
	// ListByContact returns metadata for all attachments of a contact.
	ListByContact(ctx context.Context, contactID int) ([]model.AttachmentInfo, error)
}

type AttachmentServiceImpl struct {
	repo  repository.AttachmentRepository
	files filestore.Store
	log   *zap.Logger
}

// NewAttachmentService constructs AttachmentService.
func NewAttachmentService(repo repository.AttachmentRepository, files filestore.Store, log *zap.Logger) *AttachmentServiceImpl {
	return &AttachmentServiceImpl{repo: repo, files: files, log: log}
}

// Create stores the payload under a fresh key, then inserts the metadata row.
// If the insert fails the stored payload is removed so no orphan file remains.
func (s *AttachmentServiceImpl) Create(ctx context.Context, a model.Attachment) (int, error) {
	key := filestore.NewKey()
	size, err := s.files.Save(ctx, key, a.Data)
	if err != nil {
		return 0, fmt.Errorf("attachment create: %w", err)
	}
	id, err := s.repo.Create(ctx, a.Info, key)
	if err != nil {
		if delErr := s.files.Delete(ctx, key); delErr != nil {
			s.log.Error("orphan attachment payload left in store",
				zap.String("store_key", key), zap.Error(delErr))
		}
		return 0, fmt.Errorf("attachment create: %w", err)
	}
	s.log.Info("attachment created",
		zap.Int("attachment_id", id),
		zap.Int("contact_id", a.Info.ContactID),
		zap.String("file_name", a.Info.FileName),
		zap.Int64("size", size))
	return id, nil
}

// Update overwrites displayable metadata.
func (s *AttachmentServiceImpl) Update(ctx context.Context, info model.AttachmentInfo) error {
	if err := s.repo.UpdateInfo(ctx, info); err != nil {
		return fmt.Errorf("attachment update %d: %w", info.AttachmentID, err)
	}
	return nil
}

// Delete removes the stored payload, then the metadata row. Both are attempted
// regardless of the other's outcome; a half-applied delete is logged with
// enough context to reconcile the leftover side out of band.
func (s *AttachmentServiceImpl) Delete(ctx context.Context, attachmentID int) error {
	key, err := s.repo.GetStoreKey(ctx, attachmentID)
	if err != nil {
		return fmt.Errorf("attachment delete %d: %w", attachmentID, err)
	}

	fileErr := s.files.Delete(ctx, key)
	rowErr := s.repo.Delete(ctx, attachmentID)

	switch {
	case fileErr != nil && rowErr == nil:
		s.log.Error("attachment row removed but payload remains",
			zap.Int("attachment_id", attachmentID), zap.String("store_key", key), zap.Error(fileErr))
		return fmt.Errorf("attachment delete %d: %w", attachmentID, fileErr)
	case fileErr == nil && rowErr != nil:
		s.log.Error("attachment payload removed but row remains",
			zap.Int("attachment_id", attachmentID), zap.String("store_key", key), zap.Error(rowErr))
		return fmt.Errorf("attachment delete %d: %w", attachmentID, rowErr)
	case fileErr != nil && rowErr != nil:
		return fmt.Errorf("attachment delete %d: %w", attachmentID, fileErr)
	}
	return nil
}

// Apply walks the submitted directives. These side effects commit eagerly:
// they are not gated on the outcome of contact or phone validation.
func (s *AttachmentServiceImpl) Apply(ctx context.Context, infos []model.AttachmentInfo) {
	for _, info := range infos {
		switch info.State {
		case model.StateEdit:
			if err := s.Update(ctx, info); err != nil {
				if errors.Is(err, errs.ErrNotFound) {
					s.log.Warn("edit directive for unknown attachment",
						zap.Int("attachment_id", info.AttachmentID))
					continue
				}
				s.log.Error("attachment edit failed",
					zap.Int("attachment_id", info.AttachmentID), zap.Error(err))
			}
		case model.StateDeleted:
			if err := s.Delete(ctx, info.AttachmentID); err != nil {
				s.log.Error("attachment delete failed",
					zap.Int("attachment_id", info.AttachmentID), zap.Error(err))
			}
		}
	}
}

// ListByContact returns metadata for all attachments of a contact.
func (s *AttachmentServiceImpl) ListByContact(ctx context.Context, contactID int) ([]model.AttachmentInfo, error) {
	if contactID <= 0 {
		return nil, fmt.Errorf("%w: contact id must be positive, got %d", errs.ErrBadRequest, contactID)
	}
	return s.repo.ListByContact(ctx, contactID)
}
