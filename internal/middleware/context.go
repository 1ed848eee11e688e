package middleware

import (
	"github.com/matthewmachida/yumis-bakery/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the user AuthMiddleware stored on the context, or
// nil if the request is unauthenticated.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
