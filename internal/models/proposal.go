package models

import "time"

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

// Active proposals block a second submission to the same job.
func (s ProposalStatus) Active() bool {
	return s == ProposalPending || s == ProposalAccepted
}

type Proposal struct {
	ID                string         `gorm:"primarykey;type:varchar(64)" json:"id"`
	JobID             string         `gorm:"type:varchar(64);not null;index" json:"job_id"`
	FreelancerID      string         `gorm:"type:varchar(64);not null;index" json:"freelancer_id"`
	CoverLetter       string         `gorm:"type:text;not null" json:"cover_letter"`
	ProposedBudget    float64        `gorm:"not null" json:"proposed_budget"`
	EstimatedDuration string         `gorm:"type:varchar(100)" json:"estimated_duration"`
	Status            ProposalStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
