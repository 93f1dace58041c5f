package handlers

import (
	"net/http"

	"postboard"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"
)

// postRequest is the writable part of a post. Any author field sent by the
// client is not decoded.
type postRequest struct {
	Content *string `json:"content"`
}

// PostPayload documents the create/update body for Swagger.
type PostPayload struct {
	// Post text, 1 to 1000 characters
	Content string `json:"content" example:"hello"`
}

func (r postRequest) input() service.PostInput {
	return service.PostInput{Content: r.Content}
}

// @Summary      List posts
// @Description  All posts, newest first, each with its author's id and name.
// @Tags         posts
// @Produce      json
// @Success      200  {object}  postboard.ListResponse
// @Failure      500  {object}  postboard.Response
// @Router       /api/v1/posts [get]
func (h *Handler) getPosts(c *gin.Context) {
	posts, err := h.services.Posts.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, postboard.ListResponse{
		Success: true,
		Count:   len(posts),
		Data:    posts,
	})
}

// @Summary      Create post
// @Description  The author is always the authenticated caller.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      PostPayload  true  "Post payload"
// @Success      201   {object}  postboard.Response
// @Failure      400   {object}  postboard.Response
// @Failure      401   {object}  postboard.Response
// @Router       /api/v1/posts [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.services.Posts.Create(c.Request.Context(), callerID(c), req.input())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, postboard.OK(post))
}

// @Summary      Get post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  postboard.Response
// @Failure      404  {object}  postboard.Response
// @Router       /api/v1/posts/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	post, err := h.services.Posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, postboard.OK(post))
}

// @Summary      Update post
// @Description  Only the post's author may update it; others get 401.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Post ID"
// @Param        body  body      PostPayload  true  "Post payload"
// @Success      200   {object}  postboard.Response
// @Failure      400   {object}  postboard.Response
// @Failure      401   {object}  postboard.Response
// @Failure      404   {object}  postboard.Response
// @Router       /api/v1/posts/{id} [put]
// @Security     BearerAuth
func (h *Handler) updatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.services.Posts.Update(c.Request.Context(), callerID(c), c.Param("id"), req.input())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, postboard.OK(post))
}

// @Summary      Delete post
// @Description  Only the post's author may delete it; others get 401.
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  postboard.Response
// @Failure      401  {object}  postboard.Response
// @Failure      404  {object}  postboard.Response
// @Router       /api/v1/posts/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePost(c *gin.Context) {
	if err := h.services.Posts.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, postboard.OK(postboard.EmptyData))
}
