// Package httpserver exposes the contact book HTTP API.
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrewch/contactbook/internal/service"
)

// Prober checks storage connectivity for the per-request probe.
// Implemented by *postgres.DB.
type Prober interface {
	CheckConnection(ctx context.Context, timeout time.Duration) error
}

// Server wires services into HTTP handlers.
type Server struct {
	log          *zap.Logger
	contacts     service.ContactService
	phones       service.PhoneService
	attachments  service.AttachmentService
	prober       Prober
	probeTimeout time.Duration
	maxUpload    int64
}

// New constructs a server with injected services. Non-positive probeTimeout
// and maxUpload fall back to defaults.
func New(
	log *zap.Logger,
	contacts service.ContactService,
	phones service.PhoneService,
	attachments service.AttachmentService,
	prober Prober,
	probeTimeout time.Duration,
	maxUpload int64,
) *Server {
	if probeTimeout <= 0 {
		probeTimeout = 2 * time.Second
	}
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	return &Server{
		log:          log,
		contacts:     contacts,
		phones:       phones,
		attachments:  attachments,
		prober:       prober,
		probeTimeout: probeTimeout,
		maxUpload:    maxUpload,
	}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(Recovery(s.log), RequestLogger(s.log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
	}))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	contacts := r.Group("/contacts")
	{
		contacts.POST("/edit", s.editContact)
		contacts.GET("/attachments", s.contactAttachments)
	}
	return r
}
