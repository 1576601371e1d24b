package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gabrielcaixeta01/barber-agenda/internal/config"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httpresp"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
)

// AuthHandler verifies admin credentials and issues the bearer token
// the edge guard checks. Admin accounts are provisioned directly in
// the database; there is no self-service registration.
type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var profile models.AdminProfile
	if err := h.db.
		Where("email = ?", email).
		First(&profile).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(profile.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "")
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": profile.ID,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"token": token,
		"admin": gin.H{
			"id":           profile.ID,
			"display_name": profile.DisplayName,
			"email":        profile.Email,
		},
	})
}
