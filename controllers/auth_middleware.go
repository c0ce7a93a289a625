package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	dbpkg "seeker/db"
	"seeker/models"
	"seeker/search"

	"github.com/gin-gonic/gin"
)

// jwtClaims is the minimum needed for authentication. Tokens issued by
// Login look like { "sub": <userId>, "email": "...", "iat": ..., "exp": ... }.
type jwtClaims struct {
	Sub int64 `json:"sub"`
	Exp int64 `json:"exp"`
	Iat int64 `json:"iat"`
}

const ctxUserKey = "auth_user"

// AuthRequired validates the Bearer token and loads the user from DB into
// context. Mutations sit behind this: no identity means a hard 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveIdentity(c)
		if !ok {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// IdentityOptional loads the user when a valid token is present and
// continues either way. List reads sit behind this one: an absent
// session degrades to an empty history, never a 401.
func IdentityOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveIdentity(c); ok {
			c.Set(ctxUserKey, user)
		}
		c.Next()
	}
}

func resolveIdentity(c *gin.Context) (models.User, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return models.User{}, false
	}
	token := strings.TrimSpace(h[len("Bearer "):])
	claims, ok := parseAndVerifyJWT(token, getJWTSecret())
	if !ok {
		return models.User{}, false
	}
	if claims.Exp > 0 && time.Now().Unix() > claims.Exp {
		return models.User{}, false
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		return models.User{}, false
	}
	var user models.User
	if err := db.First(&user, claims.Sub).Error; err != nil {
		return models.User{}, false
	}
	if user.Status == models.USER_STATUS_BLOCKED {
		return models.User{}, false
	}
	return user, true
}

// GetUserLogged returns the user loaded by the auth middlewares.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// Identity returns the caller's identity, or search.NoIdentity when
// there is no session.
func Identity(c *gin.Context) int64 {
	user, ok := GetUserLogged(c)
	if !ok {
		return search.NoIdentity
	}
	return user.ID
}

// parseAndVerifyJWT verifies HS256 JWTs signed by our Login handler.
func parseAndVerifyJWT(token string, secret string) (jwtClaims, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return jwtClaims{}, false
	}

	signingInput := parts[0] + "." + parts[1]
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signingInput))
	sig := mac.Sum(nil)
	expected := base64.RawURLEncoding.EncodeToString(sig)

	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return jwtClaims{}, false
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return jwtClaims{}, false
	}

	var claims jwtClaims
	if err := json.Unmarshal(payloadBytes, &claims); err != nil {
		return jwtClaims{}, false
	}

	if claims.Sub == 0 {
		return jwtClaims{}, false
	}
	return claims, true
}
