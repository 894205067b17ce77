package middleware

import "github.com/gin-gonic/gin"

// adminKey is the key used to store the authenticated admin subject.
const adminKey = contextKey("admin")

// GetAdminFromContext retrieves the authenticated admin subject set by AuthMiddleware.
// It returns the subject and a boolean indicating if it was found.
func GetAdminFromContext(c *gin.Context) (string, bool) {
	adminVal := c.Request.Context().Value(adminKey)
	if adminVal == nil {
		return "", false
	}

	admin, ok := adminVal.(string)
	if !ok || admin == "" {
		return "", false
	}
	return admin, true
}
