package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hrdesk/backend/internal/auth"
	"hrdesk/backend/internal/models"
	"hrdesk/backend/internal/storage"
)

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates by phone+password. There is no server-side session;
// the returned token is informational and nothing validates it later.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Phone and password are required")
		return
	}

	user, err := h.Store.GetUserByPhone(req.Phone)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		internalError(c)
		return
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Account is deactivated"})
		return
	}

	now := time.Now()
	updated, err := h.Store.UpdateUser(user.ID, models.UserPatch{LastLogin: &now})
	if err != nil {
		// The credentials checked out; a failed lastLogin write is not
		// worth failing the login over.
		log.Printf("ERROR: Failed to record lastLogin for user %s: %v", user.ID, err)
		updated = user
	}

	token, err := auth.GenerateToken(updated, h.JWTSecret)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    updated,
		"token":   token,
		"message": "Login successful",
	})
}

type registerRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role"`
	Department string `json:"department"`
	IsActive   *bool  `json:"isActive"`
}

// Register creates an account after checking phone and email are unused.
// Nothing is written when either check fails.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid user data")
		return
	}

	if _, err := h.Store.GetUserByPhone(req.Phone); err == nil {
		badRequest(c, "Phone number already registered")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		internalError(c)
		return
	}
	if _, err := h.Store.GetUserByEmail(req.Email); err == nil {
		badRequest(c, "Email already registered")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		internalError(c)
		return
	}

	user, err := h.newUser(req)
	if err != nil {
		internalError(c)
		return
	}
	if err := h.Store.CreateUser(user); err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    user,
		"message": "Registration successful",
	})
}

// newUser maps the payload to a User with a hashed password. Accounts are
// active unless the payload says otherwise.
func (h *Handler) newUser(req registerRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return &models.User{
		Username:   req.Username,
		Password:   hash,
		Email:      req.Email,
		Phone:      req.Phone,
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		IsActive:   isActive,
	}, nil
}

// Logout acknowledges the request. No session exists server-side, so there
// is nothing to invalidate.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// CurrentUser returns a fixed placeholder identity. Deliberate stub: with
// no session there is no caller identity to resolve.
func (h *Handler) CurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       "hr-admin",
			"username": "hradmin",
			"name":     "HR Administrator",
			"role":     models.RoleHRManager,
		},
	})
}
