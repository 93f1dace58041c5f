package handlers

import (
	"strings"
	"time"

	"postboard/internal/apperr"

	"github.com/gin-gonic/gin"
)

// ctxUserID is the gin context key holding the authenticated user id.
const ctxUserID = "userId"

// protect resolves the session token from the Authorization header or the
// session cookie and records the caller's id for the handler.
func (h *Handler) protect(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		if cookie, err := c.Cookie(h.opts.CookieName); err == nil {
			token = cookie
		}
	}
	if token == "" {
		_ = c.Error(apperr.New(apperr.KindUnauthenticated, msgNotAuthorized))
		c.Abort()
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Set(ctxUserID, userID)
	c.Next()
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// callerID returns the id protect stored for this request.
func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	)
}
