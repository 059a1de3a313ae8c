package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UmerAzizGujjar/portfolio/internal/application/usecase/auth"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase          *auth.LoginUseCase
	registerUseCase       *auth.RegisterUseCase
	changePasswordUseCase *auth.ChangePasswordUseCase
	getProfileUseCase     *auth.GetProfileUseCase
}

func NewAuthHandler(
	loginUC *auth.LoginUseCase,
	registerUC *auth.RegisterUseCase,
	changePasswordUC *auth.ChangePasswordUseCase,
	getProfileUC *auth.GetProfileUseCase,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:          loginUC,
		registerUseCase:       registerUC,
		changePasswordUseCase: changePasswordUC,
		getProfileUseCase:     getProfileUC,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("username, email and password are required", err))
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": output.User})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("email and password are required", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": output.AccessToken,
		"user":  output.User,
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	u, err := h.getProfileUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("currentPassword and newPassword are required", err))
		return
	}

	err := h.changePasswordUseCase.Execute(c.Request.Context(), auth.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
