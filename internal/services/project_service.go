package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/logger"
	"github.com/yukikurage/freelance-marketplace-api/internal/metrics"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/payment"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrNotProjectParticipant = errors.New("user is not part of this project")
	ErrMilestoneNotFound     = errors.New("milestone not found")
	ErrInvalidMilestoneStep  = errors.New("milestone can only advance one step at a time")
	ErrMilestoneNeedsPayment = errors.New("milestones are marked paid by confirming a payment")
	ErrMilestoneNotPayable   = errors.New("only completed milestones can be paid")
	ErrNotProjectFreelancer  = errors.New("only the freelancer can update milestone progress")
	ErrNotProjectClient      = errors.New("only the client can pay for milestones")
	ErrProposalNotAccepted   = errors.New("projects start from an accepted proposal")
	ErrProjectExists         = errors.New("a project already exists for this job")
	ErrUnbalancedMilestones  = errors.New("milestone amounts must add up to the project total")
	ErrPaymentsNotConfigured = errors.New("payments are not configured")
	ErrPaymentRequiresAction = errors.New("payment requires further action")
	ErrPaymentPending        = errors.New("payment is still processing")
	ErrUnknownProjectTab     = errors.New("unknown project tab")
	ErrPaymentFailed         = errors.New("payment failed")
)

// Project tabs
const (
	ProjectTabAll       = "all"
	ProjectTabActive    = "active"
	ProjectTabCompleted = "completed"
)

// PaymentError carries the provider's message for the payer.
type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string { return e.Message }

func (e *PaymentError) Unwrap() error { return ErrPaymentFailed }

// ProjectService handles projects, milestone progress and payments
type ProjectService struct {
	projectRepo  repository.ProjectRepository
	proposalRepo repository.ProposalRepository
	jobRepo      repository.JobRepository
	userRepo     repository.UserRepository
	payments     payment.Processor
	returnURL    string
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo repository.ProjectRepository,
	proposalRepo repository.ProposalRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	payments payment.Processor,
	returnURL string,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		proposalRepo: proposalRepo,
		jobRepo:      jobRepo,
		userRepo:     userRepo,
		payments:     payments,
		returnURL:    returnURL,
	}
}

func projectTabPredicate(tab string) (query.Predicate[models.Project], error) {
	status := func(p models.Project) models.ProjectStatus { return p.Status }
	switch tab {
	case "", ProjectTabAll:
		return query.All[models.Project](), nil
	case ProjectTabActive:
		return query.Equal(models.ProjectActive, status), nil
	case ProjectTabCompleted:
		return query.Equal(models.ProjectCompleted, status), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProjectTab, tab)
}

// ListProjects returns the user's projects under one tab.
func (s *ProjectService) ListProjects(userID, tab string) (*dto.ProjectListResponse, error) {
	pred, err := projectTabPredicate(tab)
	if err != nil {
		return nil, err
	}
	if tab == "" {
		tab = ProjectTabAll
	}

	projects, err := s.projectRepo.ListByParticipant(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	matched := query.Apply(projects, pred)
	metrics.RecordListingResults("projects", len(matched))

	out, err := s.decorate(matched)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectListResponse{Projects: out, Tab: tab}, nil
}

func (s *ProjectService) decorate(projects []models.Project) ([]dto.ProjectDTO, error) {
	ids := make([]string, 0, len(projects)*2)
	for _, p := range projects {
		ids = append(ids, p.ClientID, p.FreelancerID)
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve participants: %w", err)
	}

	out := make([]dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		item := dto.ToProjectDTO(p)
		if u, ok := users[p.ClientID]; ok {
			summary := dto.ToUserSummaryDTO(u)
			item.Client = &summary
		}
		if u, ok := users[p.FreelancerID]; ok {
			summary := dto.ToUserSummaryDTO(u)
			item.Freelancer = &summary
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *ProjectService) findForParticipant(userID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if !project.HasParticipant(userID) {
		return nil, ErrNotProjectParticipant
	}
	return project, nil
}

// GetProject returns a project with progress to one of its participants.
func (s *ProjectService) GetProject(userID, projectID string) (*dto.ProjectDTO, error) {
	project, err := s.findForParticipant(userID, projectID)
	if err != nil {
		return nil, err
	}
	out, err := s.decorate([]models.Project{*project})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// MilestoneInput is one step of a milestone plan
type MilestoneInput struct {
	Title       string  `validate:"required,max=255"`
	Description string  `validate:"max=5000"`
	Amount      float64 `validate:"gt=0"`
	DueDate     *time.Time
}

// CreateProjectInput starts a project from an accepted proposal
type CreateProjectInput struct {
	ProposalID  string           `validate:"required"`
	Title       string           `validate:"max=255"`
	Description string           `validate:"max=5000"`
	TotalAmount float64          `validate:"gt=0"`
	Milestones  []MilestoneInput `validate:"required,min=1,dive"`
}

// CreateProject opens a project for the client of an accepted proposal. The
// milestone plan must add up to the total.
func (s *ProjectService) CreateProject(clientID string, input CreateProjectInput) (*dto.ProjectDTO, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	proposal, err := s.proposalRepo.FindByID(input.ProposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}
	job, err := s.jobRepo.FindByID(proposal.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	if job.ClientID != clientID {
		return nil, ErrNotJobOwner
	}
	if proposal.Status != models.ProposalAccepted {
		return nil, ErrProposalNotAccepted
	}

	existing, err := s.projectRepo.ListByParticipant(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	for _, p := range existing {
		if p.JobID == job.ID {
			return nil, ErrProjectExists
		}
	}

	projectID := utils.NewID()
	project := &models.Project{
		ID:           projectID,
		JobID:        job.ID,
		ClientID:     clientID,
		FreelancerID: proposal.FreelancerID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Status:       models.ProjectActive,
		StartDate:    time.Now(),
		TotalAmount:  input.TotalAmount,
	}
	if project.Title == "" {
		project.Title = job.Title
	}
	for i, m := range input.Milestones {
		project.Milestones = append(project.Milestones, models.Milestone{
			ID:          utils.NewID(),
			ProjectID:   projectID,
			Position:    i + 1,
			Title:       m.Title,
			Description: m.Description,
			Amount:      m.Amount,
			Status:      models.MilestonePending,
			DueDate:     m.DueDate,
		})
	}
	if !project.AmountsBalanced() {
		return nil, fmt.Errorf("%w: milestones total %.2f, project total %.2f",
			ErrUnbalancedMilestones, project.MilestonesTotal(), project.TotalAmount)
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	logger.L().Info("Project started", zap.String("project_id", project.ID), zap.String("job_id", job.ID))

	out, err := s.decorate([]models.Project{*project})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func findMilestone(project *models.Project, milestoneID string) (*models.Milestone, error) {
	for i := range project.Milestones {
		if project.Milestones[i].ID == milestoneID {
			m := project.Milestones[i]
			return &m, nil
		}
	}
	return nil, ErrMilestoneNotFound
}

// AdvanceMilestone moves a milestone one step along
// pending → in-progress → completed. Only the freelancer may do so.
func (s *ProjectService) AdvanceMilestone(userID, projectID, milestoneID string, next models.MilestoneStatus) (*dto.ProjectDTO, error) {
	if !next.Valid() {
		return nil, invalid("unknown milestone status")
	}
	if next == models.MilestonePaid {
		return nil, ErrMilestoneNeedsPayment
	}

	project, err := s.findForParticipant(userID, projectID)
	if err != nil {
		return nil, err
	}
	if project.FreelancerID != userID {
		return nil, ErrNotProjectFreelancer
	}
	milestone, err := findMilestone(project, milestoneID)
	if err != nil {
		return nil, err
	}
	if !milestone.Status.CanAdvanceTo(next) {
		return nil, ErrInvalidMilestoneStep
	}

	milestone.Status = next
	if next == models.MilestoneCompleted {
		now := time.Now()
		milestone.CompletedDate = &now
	}
	if err := s.projectRepo.UpdateMilestone(project, milestone); err != nil {
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}

	out, err := s.decorate([]models.Project{*project})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// PayMilestone confirms the payment intent for a completed milestone and
// marks it paid once the provider settles it. Provider failures come back
// as *PaymentError; nothing is retried.
func (s *ProjectService) PayMilestone(ctx context.Context, clientID, projectID, milestoneID, intentID string) (*dto.PaymentResponse, error) {
	if strings.TrimSpace(intentID) == "" {
		return nil, invalid("payment_intent_id is required")
	}

	project, err := s.findForParticipant(clientID, projectID)
	if err != nil {
		return nil, err
	}
	if project.ClientID != clientID {
		return nil, ErrNotProjectClient
	}
	milestone, err := findMilestone(project, milestoneID)
	if err != nil {
		return nil, err
	}
	if milestone.Status != models.MilestoneCompleted {
		return nil, ErrMilestoneNotPayable
	}

	result, err := s.payments.Confirm(ctx, intentID, s.returnURL)
	if err != nil {
		metrics.IncrementPaymentConfirmation(false)
		var providerErr *payment.Error
		switch {
		case errors.As(err, &providerErr):
			logger.L().Warn("Payment declined",
				zap.String("milestone_id", milestoneID),
				zap.String("code", providerErr.Code),
			)
			return nil, &PaymentError{Message: providerErr.Message}
		case errors.Is(err, payment.ErrNotConfigured):
			return nil, ErrPaymentsNotConfigured
		default:
			return nil, fmt.Errorf("failed to confirm payment: %w", err)
		}
	}

	response := &dto.PaymentResponse{
		PaymentIntentID: result.IntentID,
		Status:          result.Status,
		RedirectURL:     result.RedirectURL,
	}
	if !result.Settled() {
		metrics.IncrementPaymentConfirmation(false)
		response.Milestone = *milestone
		if result.RedirectURL != "" {
			return response, ErrPaymentRequiresAction
		}
		if result.Pending() {
			return response, ErrPaymentPending
		}
		return nil, &PaymentError{Message: fmt.Sprintf("Payment status: %s", result.Status)}
	}

	milestone.Status = models.MilestonePaid
	milestone.PaymentIntentID = result.IntentID
	if err := s.projectRepo.UpdateMilestone(project, milestone); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	metrics.IncrementPaymentConfirmation(true)
	logger.L().Info("Milestone paid",
		zap.String("project_id", project.ID),
		zap.String("milestone_id", milestone.ID),
		zap.Float64("amount", milestone.Amount),
	)

	response.Milestone = *milestone
	return response, nil
}
