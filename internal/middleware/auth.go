package middleware

import (
	"strings"
	"time"

	"github.com/matthewmachida/yumis-bakery/internal/store"
	"github.com/matthewmachida/yumis-bakery/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session token and puts the current user
// into the context. Tokens are read from the Authorization header or,
// for download links that cannot set headers, from ?token=.
func AuthMiddleware(jwtSecret string, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}
		if tokenStr == "" {
			util.Fail(c, util.StatusLoggedOut)
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Fail(c, util.StatusLoggedOut)
			c.Abort()
			return
		}

		sess, err := st.SessionByID(claims.SessionID)
		if err != nil || sess.Revoked || sess.ExpiresAt.Before(time.Now()) {
			util.Fail(c, util.StatusLoggedOut)
			c.Abort()
			return
		}

		user, err := st.UserByUsername(sess.Username)
		if err != nil {
			util.Fail(c, util.StatusLoggedOut)
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// RequireAdmin only lets the configured admin account through. Must run
// after AuthMiddleware.
func RequireAdmin(adminUsername string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || adminUsername == "" || user.Username != adminUsername {
			util.Fail(c, util.StatusLoggedOut)
			c.Abort()
			return
		}
		c.Next()
	}
}
