package controllers

import (
	"net/http"
	"time"

	dbpkg "seeker/db"
	"seeker/models"
	"seeker/tools"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

var tokenValidDays = 30

// SetTokenValidDays overrides the token lifetime from config.
func SetTokenValidDays(days int) {
	if days > 0 {
		tokenValidDays = days
	}
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var user models.User
	if err := c.Bind(&user); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := user.MissingFields(); missing != "" {
		RespondError(c, missing+" is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		RespondError(c, "email already registered", http.StatusConflict)
		return
	}

	user.ID = 0
	user.Status = models.USER_STATUS_AVAILABLE
	user.Password = tools.HashPassword(user.Email, user.Password)

	if err := db.Create(&user).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	user.Password = ""
	RespondSuccess(c, gin.H{"user": user})
}

// POST /api/login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email and password are required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "invalid email or password", http.StatusUnauthorized)
		return
	}
	if user.Password != tools.HashPassword(user.Email, req.Password) {
		RespondError(c, "invalid email or password", http.StatusUnauthorized)
		return
	}
	if user.Status == models.USER_STATUS_BLOCKED {
		RespondError(c, "account blocked", http.StatusForbidden)
		return
	}

	now := time.Now()
	claims := map[string]any{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.AddDate(0, 0, tokenValidDays).Unix(),
	}
	token, err := signHS256JWT(getJWTSecret(), claims)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	user.Password = ""
	RespondSuccess(c, LoginResponse{Token: token, User: user})
}
