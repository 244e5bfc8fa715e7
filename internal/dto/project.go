package dto

import "github.com/yukikurage/freelance-marketplace-api/internal/models"

// ProjectDTO adds the derived progress and milestone balance to a project
type ProjectDTO struct {
	models.Project
	Progress        int             `json:"progress"`
	MilestonesTotal float64         `json:"milestones_total"`
	AmountsBalanced bool            `json:"amounts_balanced"`
	Client          *UserSummaryDTO `json:"client,omitempty"`
	Freelancer      *UserSummaryDTO `json:"freelancer,omitempty"`
}

func ToProjectDTO(project models.Project) ProjectDTO {
	if project.Milestones == nil {
		project.Milestones = []models.Milestone{}
	}
	return ProjectDTO{
		Project:         project,
		Progress:        project.Progress(),
		MilestonesTotal: project.MilestonesTotal(),
		AmountsBalanced: project.AmountsBalanced(),
	}
}

type ProjectListResponse struct {
	Projects []ProjectDTO `json:"projects"`
	Tab      string       `json:"tab"`
}

// PaymentResponse reports a confirmed milestone payment
type PaymentResponse struct {
	Milestone       models.Milestone `json:"milestone"`
	PaymentIntentID string           `json:"payment_intent_id"`
	Status          string           `json:"status"`
	RedirectURL     string           `json:"redirect_url,omitempty"`
}
