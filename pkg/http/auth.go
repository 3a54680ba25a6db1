package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"rayhank.xyz/traffic-iot-service/pkg/models"
)

const ctxKeyUser = "current_user"

func (rs *RestfulServer) userFromRequest(c *gin.Context) (*models.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	user, err := rs.Traffic.Account.VerifyToken(tokenString)
	if err != nil {
		return nil, false
	}
	return user, true
}

// RequireAuth rejects the request with 401 before any ownership check runs.
func (rs *RestfulServer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := rs.userFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ctxKeyUser, user)
		c.Next()
	}
}

// OptionalAuth attaches the requester when a valid token is supplied and
// lets everyone else through anonymously.
func (rs *RestfulServer) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := rs.userFromRequest(c); ok {
			c.Set(ctxKeyUser, user)
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
