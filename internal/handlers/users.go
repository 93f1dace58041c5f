package handlers

import (
	"net/http"

	"postboard"

	"github.com/gin-gonic/gin"
)

// @Summary      Get user profile
// @Description  The user and every post they wrote, newest first.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  postboard.Response
// @Failure      404  {object}  postboard.Response
// @Router       /api/v1/users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	page, err := h.services.Users.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, postboard.OK(page))
}
