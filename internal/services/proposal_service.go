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
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

var (
	ErrNotFreelancer           = errors.New("only freelancers can submit proposals")
	ErrJobNotOpen              = errors.New("job is not accepting proposals")
	ErrOwnJob                  = errors.New("cannot submit a proposal to your own job")
	ErrDuplicateProposal       = errors.New("you already have an active proposal for this job")
	ErrProposalNotFound        = errors.New("proposal not found")
	ErrProposalAlreadyDecided  = errors.New("proposal has already been decided")
	ErrInvalidProposalDecision = errors.New("decision must be accepted or rejected")
)

// ProposalService handles proposal submission and review
type ProposalService struct {
	proposalRepo  repository.ProposalRepository
	jobRepo       repository.JobRepository
	userRepo      repository.UserRepository
	submitLatency time.Duration
}

// NewProposalService creates a new ProposalService
func NewProposalService(proposalRepo repository.ProposalRepository, jobRepo repository.JobRepository, userRepo repository.UserRepository, submitLatency time.Duration) *ProposalService {
	return &ProposalService{
		proposalRepo:  proposalRepo,
		jobRepo:       jobRepo,
		userRepo:      userRepo,
		submitLatency: submitLatency,
	}
}

// SubmitProposalInput represents the proposal form
type SubmitProposalInput struct {
	CoverLetter       string  `validate:"required,max=5000"`
	ProposedBudget    float64 `validate:"gt=0"`
	EstimatedDuration string  `validate:"required,max=100"`
}

func (s *ProposalService) findJob(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return job, nil
}

// Submit stores a pending proposal after the simulated latency.
func (s *ProposalService) Submit(ctx context.Context, freelancerID, jobID string, input SubmitProposalInput) (*models.Proposal, error) {
	input.CoverLetter = strings.TrimSpace(input.CoverLetter)
	input.EstimatedDuration = strings.TrimSpace(input.EstimatedDuration)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	freelancer, err := s.userRepo.FindByID(freelancerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !freelancer.IsFreelancer() {
		return nil, ErrNotFreelancer
	}

	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID == freelancerID {
		return nil, ErrOwnJob
	}
	if job.Status != models.JobStatusOpen {
		return nil, ErrJobNotOpen
	}

	if err := simulateLatency(ctx, s.submitLatency); err != nil {
		return nil, err
	}

	proposal := &models.Proposal{
		ID:                utils.NewID(),
		JobID:             jobID,
		FreelancerID:      freelancerID,
		CoverLetter:       input.CoverLetter,
		ProposedBudget:    input.ProposedBudget,
		EstimatedDuration: input.EstimatedDuration,
		Status:            models.ProposalPending,
	}
	if err := s.proposalRepo.Create(proposal); err != nil {
		if errors.Is(err, repository.ErrActiveProposalExists) {
			return nil, ErrDuplicateProposal
		}
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	logger.L().Info("Proposal submitted",
		zap.String("proposal_id", proposal.ID),
		zap.String("job_id", jobID),
		zap.String("freelancer_id", freelancerID),
	)
	return proposal, nil
}

// ListForJob returns the proposals on a job to the client who posted it.
func (s *ProposalService) ListForJob(clientID, jobID string) ([]dto.ProposalDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != clientID {
		return nil, ErrNotJobOwner
	}

	proposals, err := s.proposalRepo.ListByJob(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	ids := make([]string, 0, len(proposals))
	for _, p := range proposals {
		ids = append(ids, p.FreelancerID)
	}
	freelancers, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve freelancers: %w", err)
	}

	out := make([]dto.ProposalDTO, 0, len(proposals))
	for _, p := range proposals {
		item := dto.ProposalDTO{Proposal: p, JobTitle: job.Title}
		if f, ok := freelancers[p.FreelancerID]; ok {
			summary := dto.ToUserSummaryDTO(f)
			item.Freelancer = &summary
		}
		out = append(out, item)
	}
	return out, nil
}

// ListMine returns the proposals a freelancer has sent, newest first.
func (s *ProposalService) ListMine(freelancerID string) ([]dto.ProposalDTO, error) {
	proposals, err := s.proposalRepo.ListByFreelancer(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	out := make([]dto.ProposalDTO, 0, len(proposals))
	for _, p := range proposals {
		item := dto.ProposalDTO{Proposal: p}
		if job, err := s.jobRepo.FindByID(p.JobID); err == nil {
			item.JobTitle = job.Title
		}
		out = append(out, item)
	}
	return out, nil
}

// Decide lets the job's client accept or reject a pending proposal.
func (s *ProposalService) Decide(clientID, proposalID string, status models.ProposalStatus) (*models.Proposal, error) {
	if status != models.ProposalAccepted && status != models.ProposalRejected {
		return nil, ErrInvalidProposalDecision
	}

	proposal, err := s.proposalRepo.FindByID(proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}

	job, err := s.findJob(proposal.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != clientID {
		return nil, ErrNotJobOwner
	}

	if err := s.proposalRepo.Decide(proposal, status); err != nil {
		if errors.Is(err, repository.ErrProposalNotPending) {
			return nil, ErrProposalAlreadyDecided
		}
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}

	logger.L().Info("Proposal decided", zap.String("proposal_id", proposal.ID), zap.String("status", string(status)))
	return proposal, nil
}
