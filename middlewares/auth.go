package middlewares

import (
	"strings"
	"time"

	"github.com/Rowan7401/dream-team/database"
	"github.com/Rowan7401/dream-team/utils"
	"github.com/gin-gonic/gin"
)

const revokedTokenPrefix = "token:revoked:"

// RevokedTokenKey is the redis key holding a revoked token's jti.
func RevokedTokenKey(jti string) string {
	return revokedTokenPrefix + jti
}

// JWTAuthMiddleware rejects requests without a valid, unrevoked token
// and places the caller's identity into the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(c, 4001, "Authorization header is empty")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, 4002, "Malformed Authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, 4003, "Invalid token")
			c.Abort()
			return
		}

		if claims.ID != "" {
			// Fail closed: a redis outage must not let a revoked
			// token back in.
			n, err := database.RDB.Exists(database.Ctx, RevokedTokenKey(claims.ID)).Result()
			if err != nil {
				utils.Error(c, 5000, "Failed to verify token")
				c.Abort()
				return
			}
			if n > 0 {
				utils.Error(c, 4003, "Token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("token_id", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_exp", claims.ExpiresAt.Time)
		} else {
			c.Set("token_exp", time.Time{})
		}
		c.Next()
	}
}
