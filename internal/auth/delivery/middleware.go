package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	userdomain "worship-backend/internal/user/domain"
)

// roleRank orders the authorization tiers: member < manager < admin.
var roleRank = map[userdomain.Role]int{
	userdomain.RoleMember:  1,
	userdomain.RoleManager: 2,
	userdomain.RoleAdmin:   3,
}

// AuthMiddleware validates the bearer token and stores the caller's identity
// and role on the context. Tokens are issued by the account service; this
// backend only verifies the shared-secret signature and claims.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

// RequireRole allows only callers whose role ranks at or above minRole.
func RequireRole(minRole userdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := userdomain.Role(c.GetString("userRole"))
		if roleRank[role] < roleRank[minRole] {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CronSecretMiddleware guards the time-trigger endpoints with a shared secret
// header. An unconfigured secret rejects every call rather than opening up.
func CronSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" || c.GetHeader("X-Cron-Secret") != secret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid cron secret"})
			c.Abort()
			return
		}
		c.Next()
	}
}
