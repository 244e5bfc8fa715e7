package dto

import "github.com/yukikurage/freelance-marketplace-api/internal/models"

// ProposalDTO carries the proposal plus whichever side the reader needs
type ProposalDTO struct {
	models.Proposal
	Freelancer *UserSummaryDTO `json:"freelancer,omitempty"`
	JobTitle   string          `json:"job_title,omitempty"`
}

type ProposalListResponse struct {
	Proposals []ProposalDTO `json:"proposals"`
}
