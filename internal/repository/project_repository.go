package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create stores the project and its milestones and puts the job in progress
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).
			Where("id = ?", project.JobID).
			Update("status", models.JobStatusInProgress).Error
	})
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Scopes(database.MilestonesInOrder).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) ListByParticipant(userID string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Scopes(database.MilestonesInOrder).
		Where("client_id = ? OR freelancer_id = ?", userID, userID).
		Order("start_date DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateMilestone saves the milestone; once every milestone is paid the
// project and its job are completed as well
func (r *GormProjectRepository) UpdateMilestone(project *models.Project, milestone *models.Milestone) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(milestone).Error; err != nil {
			return err
		}

		for i := range project.Milestones {
			if project.Milestones[i].ID == milestone.ID {
				project.Milestones[i] = *milestone
			}
		}
		if !allPaid(project.Milestones) || project.Status == models.ProjectCompleted {
			return nil
		}

		project.Status = models.ProjectCompleted
		end := time.Now()
		project.EndDate = &end
		if err := tx.Model(&models.Project{}).Where("id = ?", project.ID).
			Updates(map[string]interface{}{"status": project.Status, "end_date": end}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).
			Where("id = ?", project.JobID).
			Update("status", models.JobStatusCompleted).Error
	})
}

func allPaid(milestones []models.Milestone) bool {
	if len(milestones) == 0 {
		return false
	}
	for _, m := range milestones {
		if m.Status != models.MilestonePaid {
			return false
		}
	}
	return true
}
