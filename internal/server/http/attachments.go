package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrewch/contactbook/internal/model"
	"github.com/andrewch/contactbook/internal/validation"
)

// contactAttachments handles GET /contacts/attachments?contact_id=N.
func (s *Server) contactAttachments(c *gin.Context) {
	idStr := c.Query("contact_id")
	if !validation.IsNumber(idStr) {
		c.Status(http.StatusBadRequest)
		return
	}
	id, _ := strconv.Atoi(idStr)

	list, err := s.attachments.ListByContact(c.Request.Context(), id)
	if err != nil {
		s.log.Error("attachment list failed", zap.Int("contact_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	if list == nil {
		list = []model.AttachmentInfo{}
	}
	c.JSON(http.StatusOK, list)
}
