package handlers

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

// Handlers groups every route handler of the API
type Handlers struct {
	Auth      *AuthHandler
	Jobs      *JobHandler
	People    *PeopleHandler
	Proposals *ProposalHandler
	Messages  *MessageHandler
	Projects  *ProjectHandler
	Dashboard *DashboardHandler
	Settings  *SettingsHandler
}

// RegisterRoutes mounts the API under /api. The session middleware must
// already be installed on r.
func RegisterRoutes(r *gin.Engine, h Handlers, projects repository.ProjectRepository) {
	clientsOnly := middleware.RequireUserType(models.UserTypeClient)
	freelancersOnly := middleware.RequireUserType(models.UserTypeFreelancer)
	projectAccess := middleware.RequireProjectAccess(projects)

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), h.Auth.GetCurrentUser)
		}

		// Catalog routes (public)
		api.GET("/jobs", h.Jobs.ListJobs)
		api.GET("/jobs/meta", h.Jobs.Meta)
		api.GET("/jobs/:id", h.Jobs.GetJob)
		api.GET("/freelancers", h.People.ListFreelancers)
		api.GET("/freelancers/:id", h.People.GetFreelancer)
		api.GET("/clients/:id", h.People.GetClient)

		// Everything below needs a session
		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.POST("/jobs", clientsOnly, h.Jobs.CreateJob)
			protected.POST("/jobs/:id/proposals", freelancersOnly, h.Proposals.SubmitProposal)
			protected.GET("/jobs/:id/proposals", clientsOnly, h.Proposals.ListJobProposals)
			protected.GET("/proposals", freelancersOnly, h.Proposals.ListMyProposals)
			protected.PATCH("/proposals/:id", clientsOnly, h.Proposals.DecideProposal)

			protected.GET("/conversations", h.Messages.ListConversations)
			protected.GET("/conversations/:userId", h.Messages.GetThread)
			protected.POST("/messages", h.Messages.SendMessage)

			protected.GET("/projects", h.Projects.ListProjects)
			protected.POST("/projects", clientsOnly, h.Projects.CreateProject)
			protected.GET("/projects/:id", projectAccess, h.Projects.GetProject)
			protected.PATCH("/projects/:id/milestones/:milestoneId", projectAccess, h.Projects.UpdateMilestone)
			protected.POST("/projects/:id/milestones/:milestoneId/pay", projectAccess, clientsOnly, h.Projects.PayMilestone)

			protected.GET("/dashboard", h.Dashboard.Overview)
			protected.GET("/dashboard/jobs", h.Dashboard.Jobs)

			protected.POST("/profile/setup", h.Settings.SetupProfile)
			protected.PUT("/settings/profile", h.Settings.UpdateProfile)
			protected.PUT("/settings/account", h.Settings.UpdateAccount)
			protected.GET("/settings/notifications", h.Settings.GetNotifications)
			protected.PUT("/settings/notifications", h.Settings.UpdateNotifications)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "This page is under construction")
	})
}
