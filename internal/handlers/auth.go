package handlers

import (
	"errors"
	"net/http"

	"discuss/internal/middleware"
	"discuss/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  services.AuthService
	users services.UserService
}

func NewAuthHandler(auth services.AuthService, users services.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type logInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUp creates an account and signs it in.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req services.SignUpInput
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, err)
		return
	}

	user, err := h.auth.SignUp(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}

	if err := middleware.SignIn(c, user.ID); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"user": user}})
}

func (h *AuthHandler) LogIn(c *gin.Context) {
	var req logInRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, err)
		return
	}

	user, err := h.auth.LogIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	if err := middleware.SignIn(c, user.ID); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"user": user}})
}

func (h *AuthHandler) LogOut(c *gin.Context) {
	if err := middleware.SignOut(c); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetSession reports the signed-in user, or 401 with a null user.
func (h *AuthHandler) GetSession(c *gin.Context) {
	userID := middleware.SessionUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}

	user, err := h.users.GetMe(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			// account removed under a live session
			c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
			return
		}
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
