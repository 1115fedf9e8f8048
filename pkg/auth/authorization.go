package auth

import (
	"context"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(firebaseApp *firebase.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		ctx := context.Background()
		authClient, err := firebaseApp.Auth(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initialize Firebase Auth"})
			c.Abort()
			return
		}

		token, err := authClient.VerifyIDToken(ctx, idToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token"})
			c.Abort()
			return
		}

		// Attach token to the context
		c.Set("token", token)

		c.Next()
	}
}

// Token returns the verified token attached by AuthMiddleware, nil if absent.
func Token(c *gin.Context) *fbauth.Token {
	value, ok := c.Get("token")
	if !ok {
		return nil
	}
	token, _ := value.(*fbauth.Token)
	return token
}

// AdminOnly requires the verified token to carry the admin custom claim. It
// must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := Token(c)
		if token == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		isAdmin, _ := token.Claims["admin"].(bool)
		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
