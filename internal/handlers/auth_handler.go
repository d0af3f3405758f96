package handlers

import (
	"errors"
	"net/http"

	"fastfood_backend/internal/models"
	"fastfood_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type userResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			respondError(c, http.StatusBadRequest, "User already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	respondOK(c, gin.H{"user": toUserResponse(user), "token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	respondOK(c, gin.H{"user": toUserResponse(user), "token": token})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := currentClaims(c)

	user, err := h.authService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	respondOK(c, toUserResponse(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims := currentClaims(c)

	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := h.authService.UpdateProfile(c.Request.Context(), claims.UserID, req.Name, req.Email, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrDuplicateEmail):
			respondError(c, http.StatusBadRequest, "Email already in use")
		default:
			respondError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondMessage(c, "Profile updated successfully")
}
