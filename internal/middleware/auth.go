package middleware

import (
	"net/http"
	"strings"

	"talentboard/internal/auth"
	"talentboard/internal/logger"
	"talentboard/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const companyIDKey = string(contextkeys.CompanyIDContextKey)

// AuthMiddleware validates the bearer token and stores the company id in
// both the gin context and the request context (for log correlation).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(companyIDKey, claims.CompanyID)
		ctx := logger.WithCompanyID(c.Request.Context(), claims.CompanyID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetCompanyID extracts the authenticated company id from the context.
func GetCompanyID(c *gin.Context) string {
	companyID, exists := c.Get(companyIDKey)
	if !exists {
		return ""
	}

	id, ok := companyID.(string)
	if !ok {
		return ""
	}
	return id
}
