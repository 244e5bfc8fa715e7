package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

var (
	// ErrActiveProposalExists is returned when the freelancer already has a pending or accepted proposal on the job.
	ErrActiveProposalExists = errors.New("proposal repository: active proposal already exists")
	// ErrProposalNotPending is returned when deciding on a proposal that was already decided.
	ErrProposalNotPending = errors.New("proposal repository: proposal is not pending")
)

// GormProposalRepository is a GORM implementation of ProposalRepository
type GormProposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new ProposalRepository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &GormProposalRepository{db: db}
}

// Create enforces one active proposal per freelancer per job and keeps the
// job's proposal counter in step, atomically
func (r *GormProposalRepository) Create(proposal *models.Proposal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&models.Proposal{}).
			Where("job_id = ? AND freelancer_id = ? AND status IN ?",
				proposal.JobID, proposal.FreelancerID,
				[]models.ProposalStatus{models.ProposalPending, models.ProposalAccepted}).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrActiveProposalExists
		}

		if err := tx.Create(proposal).Error; err != nil {
			return err
		}

		return tx.Model(&models.Job{}).
			Where("id = ?", proposal.JobID).
			UpdateColumn("proposal_count", gorm.Expr("proposal_count + ?", 1)).Error
	})
}

// FindByID finds a proposal by ID
func (r *GormProposalRepository) FindByID(id string) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := r.db.Where("id = ?", id).First(&proposal).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *GormProposalRepository) ListByJob(jobID string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	if err := r.db.Where("job_id = ?", jobID).Order("created_at ASC").Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *GormProposalRepository) ListByFreelancer(freelancerID string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	if err := r.db.Where("freelancer_id = ?", freelancerID).Order("created_at DESC").Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *GormProposalRepository) CountPendingForJobs(jobIDs []string) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Proposal{}).
		Where("job_id IN ? AND status = ?", jobIDs, models.ProposalPending).
		Count(&count).Error
	return count, err
}

// Decide moves a pending proposal to status. Accepting also puts the job in progress.
func (r *GormProposalRepository) Decide(proposal *models.Proposal, status models.ProposalStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Proposal{}).
			Where("id = ? AND status = ?", proposal.ID, models.ProposalPending).
			Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProposalNotPending
		}
		proposal.Status = status

		if status != models.ProposalAccepted {
			return nil
		}
		return tx.Model(&models.Job{}).
			Where("id = ?", proposal.JobID).
			Update("status", models.JobStatusInProgress).Error
	})
}
