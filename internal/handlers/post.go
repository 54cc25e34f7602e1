package handlers

import (
	"net/http"

	"discuss/internal/middleware"
	"discuss/internal/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts  services.PostService
	paging Paging
}

func NewPostHandler(posts services.PostService, paging Paging) *PostHandler {
	return &PostHandler{posts: posts, paging: paging}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *PostHandler) List(c *gin.Context) {
	page, err := h.paging.getPagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	result, err := h.posts.GetPosts(c.Request.Context(), page)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListMine lists the acting user's own posts.
func (h *PostHandler) ListMine(c *gin.Context) {
	page, err := h.paging.getPagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	result, err := h.posts.GetUserPosts(c.Request.Context(), middleware.CurrentUserID(c), page)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, err)
		return
	}

	post, err := h.posts.CreatePost(c.Request.Context(), middleware.CurrentUserID(c), req.Title, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h *PostHandler) Delete(c *gin.Context) {
	msg, err := h.posts.DeletePost(c.Request.Context(), c.Param("postId"), middleware.CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
