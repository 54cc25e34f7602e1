package handlers

import (
	"net/http"

	"discuss/internal/middleware"
	"discuss/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users  services.UserService
	paging Paging
}

func NewUserHandler(users services.UserService, paging Paging) *UserHandler {
	return &UserHandler{users: users, paging: paging}
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.GetMe(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) List(c *gin.Context) {
	page, err := h.paging.getPagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	result, err := h.users.GetUsers(c.Request.Context(), page)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
