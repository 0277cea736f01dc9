package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"cerberus/models"
	"cerberus/services/contact"
	"cerberus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactSubmitter is the part of contact.Service the handler needs.
type ContactSubmitter interface {
	Submit(ctx context.Context, p models.ContactPayload) (*contact.Result, error)
}

// ContactHandler serves the public contact form endpoint.
type ContactHandler struct {
	Service ContactSubmitter
}

func NewContactHandler(svc ContactSubmitter) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// SubmitContactHandler stores a submission and relays it by email.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	logger := getLogger(c)

	// An empty body is an empty payload and fails validation below.
	var payload models.ContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	res, err := h.Service.Submit(c.Request.Context(), payload)
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn("contact: rejected submission", zap.Strings("missing", verr.Missing))
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "Missing name or email", Missing: verr.Missing})
		return
	case err != nil:
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to submit form", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notified": res.Notified})
}
