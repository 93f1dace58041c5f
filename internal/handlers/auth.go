package handlers

import (
	"net/http"

	"postboard"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" example:"Alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"s3cr3t!"`
}

type loginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"s3cr3t!"`
}

// sendToken writes the session token both as a cookie and in the body.
func (h *Handler) sendToken(c *gin.Context, status int, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, token, int(h.opts.CookieTTL.Seconds()), "/", "", h.opts.SecureCookie, true)
	c.JSON(status, postboard.Response{Success: true, Token: token})
}

// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account"
// @Success      200   {object}  postboard.Response
// @Failure      400   {object}  postboard.Response
// @Router       /api/v1/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}
	token, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.sendToken(c, http.StatusOK, token)
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  postboard.Response
// @Failure      400   {object}  postboard.Response
// @Failure      401   {object}  postboard.Response
// @Router       /api/v1/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	token, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.sendToken(c, http.StatusOK, token)
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  postboard.Response
// @Failure      401  {object}  postboard.Response
// @Router       /api/v1/auth/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	u, err := h.services.CurrentUser(c.Request.Context(), callerID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, postboard.OK(u))
}

// @Summary      Log out
// @Description  Clears the session cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  postboard.Response
// @Router       /api/v1/auth/logout [get]
func (h *Handler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, "", -1, "/", "", h.opts.SecureCookie, true)
	c.JSON(http.StatusOK, postboard.OK(postboard.EmptyData))
}
