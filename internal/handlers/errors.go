package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"postboard"
	"postboard/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Stable client-facing error messages.
const (
	msgDatabaseConnection = "Database connection error. Please try again later."
	msgEmailInUse         = "Email already in use"
	msgInvalidToken       = "Invalid token. Please log in again."
	msgExpiredToken       = "Token expired. Please log in again."
	msgServerError        = "Server Error"
	msgRouteNotFound      = "Route not found"
	msgInvalidBody        = "Invalid request body"
	msgNotAuthorized      = "Not authorized to access this route"
)

// normalizeError maps any error surfaced while handling a request to the
// status and error payload written to the client. Conditions are checked
// in a fixed order because one chain can carry several of them.
func normalizeError(err error) (int, any) {
	if _, ok := apperr.Find(err, apperr.KindStoreUnavailable); ok {
		return http.StatusInternalServerError, msgDatabaseConnection
	}
	if _, ok := apperr.Find(err, apperr.KindDuplicateKey); ok {
		return http.StatusBadRequest, msgEmailInUse
	}
	if ve, ok := apperr.Find(err, apperr.KindValidation); ok && len(ve.Fields) > 0 {
		return http.StatusBadRequest, ve.Fields
	}
	if _, ok := apperr.Find(err, apperr.KindInvalidToken); ok {
		return http.StatusUnauthorized, msgInvalidToken
	}
	if _, ok := apperr.Find(err, apperr.KindExpiredToken); ok {
		return http.StatusUnauthorized, msgExpiredToken
	}

	var ae *apperr.Error
	if errors.As(err, &ae) {
		msg := ae.Message
		if msg == "" {
			msg = msgServerError
		}
		return ae.StatusCode(), msg
	}
	// plain errors carry internal detail only
	return http.StatusInternalServerError, msgServerError
}

// errorMiddleware is the single place error responses are written.
// Handlers report failures with c.Error and return.
func (h *Handler) errorMiddleware(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err
	status, payload := normalizeError(err)

	fields := []any{"status", status, "method", c.Request.Method, "path", c.Request.URL.Path, "err", err}
	if status >= http.StatusInternalServerError {
		h.log.Errorw("request_failed", fields...)
	} else {
		h.log.Infow("request_rejected", fields...)
	}

	c.AbortWithStatusJSON(status, postboard.Fail(payload))
}

// recoverPanic hands a recovered panic to errorMiddleware as a 500.
func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	_ = c.Error(fmt.Errorf("panic: %v", recovered))
	c.Abort()
}

func (h *Handler) routeNotFound(c *gin.Context) {
	_ = c.Error(apperr.New(apperr.KindNotFound, msgRouteNotFound))
}

// bindJSON decodes the request body into dst. An empty body leaves dst
// untouched. It reports false after recording a bad-request error.
func bindJSON(c *gin.Context, dst any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		_ = c.Error(apperr.Wrap(err, apperr.KindBadRequest, msgInvalidBody))
		return false
	}
	return true
}
