// Package handler exposes the dashboard over HTTP.
package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation": operation,
		"method":    c.Request().Method,
		"path":      c.Request().URL.Path,
		"ip":        c.RealIP(),
	})
}

// fail logs err and writes the matching error response.
func (h *BaseHandler) fail(c echo.Context, entry *logrus.Entry, err error, msg string) error {
	status, code := errorStatus(err)
	if status >= 500 {
		entry.WithError(err).Error(msg)
	} else {
		entry.WithError(err).Warn(msg)
	}
	return c.JSON(status, toErrorResponse(code, err.Error()))
}
