package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrewch/contactbook/internal/errs"
	"github.com/andrewch/contactbook/internal/service"
	"github.com/andrewch/contactbook/internal/validation"
)

// editContact handles POST /contacts/edit.
//
// Ordering matters here: attachment and phone writes commit eagerly, while
// the contact row itself is only written when the aggregated violation list is
// empty. Attachments are independently versioned resources; a 400 on the
// contact does not roll them back.
func (s *Server) editContact(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := decodeEditForm(c, s.maxUpload)
	if err != nil {
		// Decode failure is terminal: 400 with an empty body, same wire
		// contract as a bad id. Detail goes to the log only.
		s.log.Warn("edit decode failed", zap.Error(err))
		c.Status(http.StatusBadRequest)
		return
	}
	defer form.Close()

	if !validation.IsNumber(form.ID) {
		c.Status(http.StatusBadRequest)
		return
	}
	id, _ := strconv.Atoi(form.ID)

	// Update-only endpoint: reject unknown ids before any eager side effect.
	ok, err := s.contacts.Exists(ctx, id)
	if err != nil {
		s.log.Error("contact lookup failed", zap.Int("contact_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, []string{fmt.Sprintf("Contact %d does not exist.", id)})
		return
	}

	// Implicit new-attachment path: every file part is persisted now that the
	// whole body decoded cleanly.
	for i := range form.Files {
		form.Files[i].Info.ContactID = id
		if _, err := s.attachments.Create(ctx, form.Files[i]); err != nil {
			s.log.Error("eager attachment create failed",
				zap.Int("contact_id", id),
				zap.String("file_name", form.Files[i].Info.FileName),
				zap.Error(err))
		}
	}

	contact := buildContact(id, form)
	service.Normalize(&contact)

	violations := validation.Contact(contact)
	violations = append(violations, validation.Address(contact.Address)...)

	if err := s.prober.CheckConnection(ctx, s.probeTimeout); err != nil {
		s.log.Error("storage probe failed",
			zap.String("kind", "storage_unavailable"), zap.Error(err))
		violations = append(violations, "Connection refused.")
	}

	for i := range form.AllPhones {
		form.AllPhones[i].ContactID = id
	}
	violations = append(violations, s.phones.SavePhones(ctx, form.AllPhones)...)

	// edit/deleted directives apply regardless of the validation outcome.
	s.attachments.Apply(ctx, form.AllAttachments)

	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, violations)
		return
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusBadRequest, []string{fmt.Sprintf("Contact %d does not exist.", id)})
			return
		}
		s.log.Error("contact update failed", zap.Int("contact_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	if err := s.contacts.UpdatePhoto(ctx, id, form.Photo); err != nil {
		s.log.Error("photo update failed", zap.Int("contact_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.Status(http.StatusOK)
}
