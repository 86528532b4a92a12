package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrewch/contactbook/internal/errs"
	"github.com/andrewch/contactbook/internal/model"
	"github.com/andrewch/contactbook/internal/repository"
)

// ContactService defines operations over contact records.
type ContactService interface {
	// Update persists all editable contact fields, address included.
	Update(ctx context.Context, c model.Contact) error
	// UpdatePhoto sets the photo reference for a contact.
	UpdatePhoto(ctx context.Context, contactID int, photo string) error
	// Exists reports whether the contact id references a stored row.
	Exists(ctx context.Context, contactID int) (bool, error)
}

type ContactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService constructs ContactService.
func NewContactService(repo repository.ContactRepository) *ContactServiceImpl {
	return &ContactServiceImpl{repo: repo}
}

// Normalize trims every scalar field, maps blanks to nil and lower-cases the
// email. Called once after decoding, before validation.
func Normalize(c *model.Contact) {
	fields := []**string{
		&c.Name, &c.Surname, &c.Patronymic, &c.Birthday, &c.Nationality,
		&c.Gender, &c.MaritalStatus, &c.WebSite, &c.Email, &c.PlaceOfWork,
		&c.Address.Country, &c.Address.City, &c.Address.Street,
		&c.Address.HouseNumber, &c.Address.FlatNumber, &c.Address.ZipCode,
	}
	for _, f := range fields {
		if *f == nil {
			continue
		}
		v := strings.TrimSpace(**f)
		if v == "" {
			*f = nil
			continue
		}
		**f = v
	}
	if c.Email != nil {
		v := strings.ToLower(*c.Email)
		c.Email = &v
	}
}

// Update validates the id and delegates to the repository.
func (s *ContactServiceImpl) Update(ctx context.Context, c model.Contact) error {
	if c.ID <= 0 {
		return fmt.Errorf("%w: contact id must be positive, got %d", errs.ErrBadRequest, c.ID)
	}
	return s.repo.Update(ctx, c)
}

// UpdatePhoto sets the photo reference for a contact.
func (s *ContactServiceImpl) UpdatePhoto(ctx context.Context, contactID int, photo string) error {
	if contactID <= 0 {
		return fmt.Errorf("%w: contact id must be positive, got %d", errs.ErrBadRequest, contactID)
	}
	return s.repo.UpdatePhoto(ctx, contactID, photo)
}

// Exists reports whether the contact id references a stored row. The edit
// pipeline runs it before any eager side effect: this system updates
// contacts, it never creates them.
func (s *ContactServiceImpl) Exists(ctx context.Context, contactID int) (bool, error) {
	if contactID <= 0 {
		return false, fmt.Errorf("%w: contact id must be positive, got %d", errs.ErrBadRequest, contactID)
	}
	return s.repo.Exists(ctx, contactID)
}
