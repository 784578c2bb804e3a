package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by AccessTokenMiddleware for downstream handlers.
const (
	ContextAuthUID  = "authUid"
	ContextUserName = "userName"
)

// AccessTokenMiddleware validates the bearer token on every request and puts
// the caller's identity into the gin context. Tokens are HS256, signed with
// the shared secret of the auth provider; the subject claim is the stable
// external identity.
func AccessTokenMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		tokenString := strings.Replace(header, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is expired or invalid"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has no subject"})
			return
		}

		c.Set(ContextAuthUID, sub)
		c.Set(ContextUserName, displayName(claims))
		c.Next()
	}
}

// displayName extracts a human-readable name from the token, falling back
// from the metadata name to the email address.
func displayName(claims jwt.MapClaims) string {
	if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
		if name, ok := meta["name"].(string); ok && name != "" {
			return name
		}
	}
	if email, ok := claims["email"].(string); ok {
		return email
	}
	return ""
}
