package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ashisrivastavaa/Blog-App/internal/application"
	"github.com/ashisrivastavaa/Blog-App/internal/interface/middleware"
	"github.com/ashisrivastavaa/Blog-App/pkg/response"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type postForm struct {
	Content string `form:"content" binding:"required"`
}

// Create POST /profile
func (h *PostHandler) Create(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid form")
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	if _, err := h.Svc.Create(c.Request.Context(), uid, form.Content); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("create post failed")
		response.Fail(c, http.StatusInternalServerError, "Could not create post")
		return
	}
	response.Redirect(c, "/profile")
}

// Like GET /like/:id toggles the caller's like on the post.
func (h *PostHandler) Like(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	err := h.Svc.ToggleLike(c.Request.Context(), c.Param("id"), uid)
	if err == application.ErrPostNotFound {
		response.Fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		h.Logger.WithError(err).WithField("post_id", c.Param("id")).Error("toggle like failed")
		response.Fail(c, http.StatusInternalServerError, "Could not update post")
		return
	}
	response.Redirect(c, "/profile")
}

// EditPage GET /edit/:id
func (h *PostHandler) EditPage(c *gin.Context) {
	p, err := h.Svc.GetPost(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "Post not found")
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{"Post": p})
}

// Update POST /update/:id overwrites content; ownership is not checked.
func (h *PostHandler) Update(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid form")
		return
	}
	if err := h.Svc.UpdateContent(c.Request.Context(), c.Param("id"), form.Content); err != nil {
		response.Fail(c, http.StatusNotFound, "Post not found")
		return
	}
	response.Redirect(c, "/profile")
}

// Search GET /search?q= returns matching posts as JSON.
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, gin.H{"results": []any{}})
		return
	}
	results, err := h.Svc.Search(c.Request.Context(), q, 20)
	if err != nil {
		h.Logger.WithError(err).Warn("post search failed")
		response.Fail(c, http.StatusInternalServerError, "Search failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
