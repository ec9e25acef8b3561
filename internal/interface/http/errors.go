package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/health-planner/internal/application"
	"github.com/oksasatya/health-planner/pkg/helpers"
	"github.com/oksasatya/health-planner/pkg/response"
	"github.com/oksasatya/health-planner/pkg/validation"
)

// writeError maps application errors to HTTP responses.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", verr.Fields)
	case errors.Is(err, application.ErrEntryNotFound), errors.Is(err, application.ErrMealNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrNoEntries):
		response.NoContent(c)
	case errors.Is(err, application.ErrNotificationFailed):
		response.Error[any](c, http.StatusBadGateway, application.ErrNotificationFailed.Error(), nil)
	case errors.Is(err, application.ErrQueueUnavailable):
		response.Error[any](c, http.StatusServiceUnavailable, application.ErrQueueUnavailable.Error(), nil)
	default:
		if logger != nil {
			helpers.LogError(logger, "request failed", err, logrus.Fields{
				"path":       c.FullPath(),
				"request_id": c.GetString("request_id"),
			})
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func bindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

// pathID reads a positive integer id from the route; it writes a 400 and returns false otherwise.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid id", map[string]string{"id": "must be a positive integer"})
		return 0, false
	}
	return id, true
}
