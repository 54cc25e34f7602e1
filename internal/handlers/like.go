package handlers

import (
	"net/http"

	"discuss/internal/middleware"
	"discuss/internal/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likes  services.LikeService
	paging Paging
}

func NewLikeHandler(likes services.LikeService, paging Paging) *LikeHandler {
	return &LikeHandler{likes: likes, paging: paging}
}

func (h *LikeHandler) List(c *gin.Context) {
	page, err := h.paging.getPagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	result, err := h.likes.GetLikes(c.Request.Context(), c.Param("postId"), page)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *LikeHandler) Create(c *gin.Context) {
	result, err := h.likes.CreateLike(c.Request.Context(), c.Param("postId"), middleware.CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Delete removes a like. ?user_id names the liker and defaults to the caller;
// only the liker may remove it.
func (h *LikeHandler) Delete(c *gin.Context) {
	result, err := h.likes.DeleteLike(c.Request.Context(), c.Param("postId"), c.Query("user_id"), middleware.CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
