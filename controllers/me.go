package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/me - smoke-test endpoint for the auth chain.
func Me(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	user.Password = ""
	RespondSuccess(c, gin.H{"user": user})
}
