package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type ProposalHandler struct {
	proposalService *services.ProposalService
}

func NewProposalHandler(proposalService *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
	}
}

// SubmitProposal sends the signed-in freelancer's proposal for job :id
func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SubmitProposalRequest struct {
		CoverLetter       string  `json:"cover_letter" binding:"required"`
		ProposedBudget    float64 `json:"proposed_budget" binding:"required"`
		EstimatedDuration string  `json:"estimated_duration" binding:"required"`
	}

	var req SubmitProposalRequest
	if !bindJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.Submit(c.Request.Context(), userID, c.Param("id"), services.SubmitProposalInput{
		CoverLetter:       req.CoverLetter,
		ProposedBudget:    req.ProposedBudget,
		EstimatedDuration: req.EstimatedDuration,
	})
	if err != nil {
		respondProposalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

// ListJobProposals returns the proposals on job :id to its client
func (h *ProposalHandler) ListJobProposals(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	proposals, err := h.proposalService.ListForJob(userID, c.Param("id"))
	if err != nil {
		respondProposalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProposalListResponse{Proposals: proposals})
}

func (h *ProposalHandler) ListMyProposals(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	proposals, err := h.proposalService.ListMine(userID)
	if err != nil {
		respondProposalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProposalListResponse{Proposals: proposals})
}

// DecideProposal accepts or rejects proposal :id
func (h *ProposalHandler) DecideProposal(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type DecideProposalRequest struct {
		Status models.ProposalStatus `json:"status" binding:"required"`
	}

	var req DecideProposalRequest
	if !bindJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.Decide(userID, c.Param("id"), req.Status)
	if err != nil {
		respondProposalError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func respondProposalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		apierrors.NotFound(c, "Job not found")
	case errors.Is(err, services.ErrProposalNotFound):
		apierrors.NotFound(c, "Proposal not found")
	case errors.Is(err, services.ErrNotFreelancer), errors.Is(err, services.ErrNotJobOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrDuplicateProposal):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidProposalDecision):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrJobNotOpen),
		errors.Is(err, services.ErrOwnJob),
		errors.Is(err, services.ErrProposalAlreadyDecided):
		apierrors.InvalidOperation(c, err.Error())
	default:
		respondCommonError(c, err)
	}
}
