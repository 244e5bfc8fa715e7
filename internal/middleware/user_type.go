package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

// RequireUserType lets only clients or only freelancers through.
// It must run after RequireAuth.
func RequireUserType(userType models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if user.UserType != userType {
			apierrors.Forbidden(c, fmt.Sprintf("Only %ss can perform this action", userType))
			c.Abort()
			return
		}

		c.Next()
	}
}
