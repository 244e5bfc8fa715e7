package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns the user's projects under the tab given by ?tab=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	resp, err := h.projectService.ListProjects(userID, c.Query("tab"))
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	project, err := h.projectService.GetProject(userID, c.Param("id"))
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject starts a project from an accepted proposal
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type MilestoneRequest struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Amount      float64    `json:"amount"`
		DueDate     *time.Time `json:"due_date"`
	}
	type CreateProjectRequest struct {
		ProposalID  string             `json:"proposal_id" binding:"required"`
		Title       string             `json:"title"`
		Description string             `json:"description"`
		TotalAmount float64            `json:"total_amount" binding:"required"`
		Milestones  []MilestoneRequest `json:"milestones" binding:"required"`
	}

	var req CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	input := services.CreateProjectInput{
		ProposalID:  req.ProposalID,
		Title:       req.Title,
		Description: req.Description,
		TotalAmount: req.TotalAmount,
	}
	for _, m := range req.Milestones {
		input.Milestones = append(input.Milestones, services.MilestoneInput{
			Title:       m.Title,
			Description: m.Description,
			Amount:      m.Amount,
			DueDate:     m.DueDate,
		})
	}

	project, err := h.projectService.CreateProject(userID, input)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateMilestone advances milestone :milestoneId one lifecycle step
func (h *ProjectHandler) UpdateMilestone(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateMilestoneRequest struct {
		Status models.MilestoneStatus `json:"status" binding:"required"`
	}

	var req UpdateMilestoneRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.AdvanceMilestone(userID, c.Param("id"), c.Param("milestoneId"), req.Status)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// PayMilestone confirms the client's payment intent for a completed
// milestone. A payment that needs 3-D Secure answers 202 with the
// redirect the payer must follow.
func (h *ProjectHandler) PayMilestone(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type PayMilestoneRequest struct {
		PaymentIntentID string `json:"payment_intent_id" binding:"required"`
	}

	var req PayMilestoneRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.projectService.PayMilestone(c.Request.Context(), userID, c.Param("id"), c.Param("milestoneId"), req.PaymentIntentID)
	if (errors.Is(err, services.ErrPaymentRequiresAction) || errors.Is(err, services.ErrPaymentPending)) && resp != nil {
		c.JSON(http.StatusAccepted, resp)
		return
	}
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func respondProjectError(c *gin.Context, err error) {
	var paymentErr *services.PaymentError
	switch {
	case errors.As(err, &paymentErr):
		apierrors.PaymentFailed(c, paymentErr.Message)
	case errors.Is(err, services.ErrPaymentsNotConfigured):
		apierrors.ServiceUnavailable(c, "Payments are not available")
	case errors.Is(err, services.ErrProjectNotFound), errors.Is(err, services.ErrNotProjectParticipant):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrMilestoneNotFound):
		apierrors.NotFound(c, "Milestone not found")
	case errors.Is(err, services.ErrProposalNotFound):
		apierrors.NotFound(c, "Proposal not found")
	case errors.Is(err, services.ErrJobNotFound):
		apierrors.NotFound(c, "Job not found")
	case errors.Is(err, services.ErrNotProjectFreelancer),
		errors.Is(err, services.ErrNotProjectClient),
		errors.Is(err, services.ErrNotJobOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUnknownProjectTab),
		errors.Is(err, services.ErrUnbalancedMilestones):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProjectExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidMilestoneStep),
		errors.Is(err, services.ErrMilestoneNeedsPayment),
		errors.Is(err, services.ErrMilestoneNotPayable),
		errors.Is(err, services.ErrProposalNotAccepted):
		apierrors.InvalidOperation(c, err.Error())
	default:
		respondCommonError(c, err)
	}
}
