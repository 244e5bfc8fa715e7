package repository

import (
	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create creates a job and counts it on the client profile in a transaction
func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}

		return tx.Model(&models.ClientProfile{}).
			Where("user_id = ?", job.ClientID).
			UpdateColumn("jobs_posted", gorm.Expr("jobs_posted + ?", 1)).Error
	})
}

// FindByID finds a job by ID
func (r *GormJobRepository) FindByID(id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns every job; catalog order is creation order
func (r *GormJobRepository) List() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("created_at ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *GormJobRepository) ListByClient(clientID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Where("client_id = ?", clientID).Order("created_at ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *GormJobRepository) UpdateStatus(id string, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
