package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the identity the auth middleware stored on the request.
// Returns 0 when unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}
