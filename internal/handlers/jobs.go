package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// ListJobs searches the job catalog.
// Without a sort parameter jobs come back in catalog order.
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := services.JobFilter{
		Search:     c.Query("q"),
		Category:   c.Query("category"),
		Experience: models.ExperienceLevel(c.Query("experience")),
		BudgetType: models.BudgetType(c.Query("budget_type")),
		Skills:     queryList(c, "skills"),
		Budget:     query.NewRange(queryFloat(c, "min_budget"), queryFloat(c, "max_budget")),
		Status:     models.JobStatus(c.Query("status")),
	}

	input := services.ListJobsInput{
		Filter:     filter,
		Pagination: utils.GetPaginationParams(c),
	}
	if key := strings.TrimSpace(c.Query("sort")); key != "" {
		sorter := query.Sorter{Key: key, Order: query.ParseOrder(c.Query("order"), query.Descending)}
		input.Sort = &sorter
	}

	resp, err := h.jobService.ListJobs(input)
	if err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Param("id"))
	if err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob posts a new open job for the signed-in client
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateJobRequest struct {
		Title       string                 `json:"title" binding:"required"`
		Description string                 `json:"description" binding:"required"`
		Category    string                 `json:"category" binding:"required"`
		Skills      []string               `json:"skills"`
		BudgetType  models.BudgetType      `json:"budget_type" binding:"required"`
		Budget      float64                `json:"budget"`
		Currency    string                 `json:"currency"`
		Experience  models.ExperienceLevel `json:"experience" binding:"required"`
		Deadline    *time.Time             `json:"deadline"`
	}

	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), userID, services.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Skills:      req.Skills,
		BudgetType:  req.BudgetType,
		Amount:      req.Budget,
		Currency:    req.Currency,
		Experience:  req.Experience,
		Deadline:    req.Deadline,
	})
	if err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Meta returns the option lists for the job and freelancer forms
func (h *JobHandler) Meta(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobService.Meta())
}

func respondJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		apierrors.NotFound(c, "Job not found")
	case errors.Is(err, services.ErrUnknownSortBy):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotClient), errors.Is(err, services.ErrNotJobOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		respondCommonError(c, err)
	}
}
