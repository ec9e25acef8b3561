package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/health-planner/internal/application"
	"github.com/oksasatya/health-planner/pkg/response"
)

type EmailHandler struct {
	Svc    *application.EntryService
	Logger *logrus.Logger
}

func NewEmailHandler(svc *application.EntryService, logger *logrus.Logger) *EmailHandler {
	return &EmailHandler{Svc: svc, Logger: logger}
}

type testEmailRequest struct {
	Email string `json:"email"`
}

// SendTest emails a sample plan synchronously so the mail setup can be checked.
func (h *EmailHandler) SendTest(c *gin.Context) {
	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	e, err := h.Svc.SendTestEmail(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponse(e), "test email sent", nil)
}

// Resend enqueues the stored plan of an entry for the email worker.
func (h *EmailHandler) Resend(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.ResendPlan(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusAccepted, map[string]any{"id": id, "enqueued": true}, "email enqueued", nil)
}
