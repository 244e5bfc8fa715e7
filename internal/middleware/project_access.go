package middleware

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

const ContextKeyProject = "project"

// RequireProjectAccess checks that the user is the client or the freelancer
// of the project named by the :id parameter
func RequireProjectAccess(projects repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		project, err := projects.FindByID(c.Param("id"))
		if err != nil || !project.HasParticipant(userID) {
			// Same answer for missing and foreign projects
			apierrors.NotFound(c, "Project not found")
			c.Abort()
			return
		}

		c.Set(ContextKeyProject, *project)
		c.Next()
	}
}
