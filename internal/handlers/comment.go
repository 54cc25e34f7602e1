package handlers

import (
	"net/http"

	"discuss/internal/middleware"
	"discuss/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments services.CommentService
	paging   Paging
}

func NewCommentHandler(comments services.CommentService, paging Paging) *CommentHandler {
	return &CommentHandler{comments: comments, paging: paging}
}

type commentRequest struct {
	Content string `json:"content"`
}

func (h *CommentHandler) List(c *gin.Context) {
	page, err := h.paging.getPagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	result, err := h.comments.GetComments(c.Request.Context(), c.Param("postId"), page)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req commentRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, err)
		return
	}

	comment, err := h.comments.CreateComment(c.Request.Context(), c.Param("postId"), middleware.CurrentUserID(c), req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, err)
		return
	}

	comment, err := h.comments.UpdateComment(c.Request.Context(), c.Param("commentId"), middleware.CurrentUserID(c), req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	msg, err := h.comments.DeleteComment(c.Request.Context(), c.Param("commentId"), middleware.CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
