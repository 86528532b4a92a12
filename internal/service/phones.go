package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrewch/contactbook/internal/model"
	"github.com/andrewch/contactbook/internal/repository"
	"github.com/andrewch/contactbook/internal/validation"
)

// PhoneService persists a submitted phone collection.
type PhoneService interface {
	// SavePhones applies each phone by state and returns violation messages
	// for the ones that failed. It never returns an error: partial success is
	// recorded as data.
	SavePhones(ctx context.Context, phones []model.Phone) []string
}

type PhoneServiceImpl struct {
	repo repository.PhoneRepository
	log  *zap.Logger
}

// NewPhoneService constructs PhoneService.
func NewPhoneService(repo repository.PhoneRepository, log *zap.Logger) *PhoneServiceImpl {
	return &PhoneServiceImpl{repo: repo, log: log}
}

// SavePhones validates and persists each phone independently. A bad phone
// contributes its violations and is skipped; a repository failure becomes a
// violation string for that phone only.
func (s *PhoneServiceImpl) SavePhones(ctx context.Context, phones []model.Phone) []string {
	var out []string
	for _, p := range phones {
		if p.State == model.StateDeleted {
			if err := s.repo.Delete(ctx, p.ID); err != nil {
				s.log.Warn("phone delete failed", zap.Int("phone_id", p.ID), zap.Error(err))
				out = append(out, fmt.Sprintf("Phone %s could not be deleted.", p.Number))
			}
			continue
		}

		if v := validation.Phone(p); len(v) > 0 {
			out = append(out, v...)
			continue
		}

		switch p.State {
		case model.StateNew:
			if _, err := s.repo.Create(ctx, p); err != nil {
				s.log.Warn("phone create failed", zap.Int("contact_id", p.ContactID), zap.Error(err))
				out = append(out, fmt.Sprintf("Phone %s could not be saved.", p.Number))
			}
		case model.StateEdit:
			if err := s.repo.Update(ctx, p); err != nil {
				s.log.Warn("phone update failed", zap.Int("phone_id", p.ID), zap.Error(err))
				out = append(out, fmt.Sprintf("Phone %s could not be updated.", p.Number))
			}
		default:
			out = append(out, fmt.Sprintf("Phone %s has unknown state %q.", p.Number, p.State))
		}
	}
	return out
}
