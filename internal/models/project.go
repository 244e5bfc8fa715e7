package models

import (
	"math"
	"time"
)

type (
	ProjectStatus   string
	MilestoneStatus string
)

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"

	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestonePaid       MilestoneStatus = "paid"
)

var milestoneOrder = map[MilestoneStatus]int{
	MilestonePending:    0,
	MilestoneInProgress: 1,
	MilestoneCompleted:  2,
	MilestonePaid:       3,
}

func (s MilestoneStatus) Valid() bool {
	_, ok := milestoneOrder[s]
	return ok
}

// CanAdvanceTo allows only single forward steps through the lifecycle.
func (s MilestoneStatus) CanAdvanceTo(next MilestoneStatus) bool {
	from, ok := milestoneOrder[s]
	if !ok {
		return false
	}
	to, ok := milestoneOrder[next]
	return ok && to == from+1
}

// Done is true once the deliverable has been handed over.
func (s MilestoneStatus) Done() bool {
	return s == MilestoneCompleted || s == MilestonePaid
}

type Project struct {
	ID           string        `gorm:"primarykey;type:varchar(64)" json:"id"`
	JobID        string        `gorm:"type:varchar(64);not null;index" json:"job_id"`
	ClientID     string        `gorm:"type:varchar(64);not null;index" json:"client_id"`
	FreelancerID string        `gorm:"type:varchar(64);not null;index" json:"freelancer_id"`
	Title        string        `gorm:"type:varchar(255);not null" json:"title"`
	Description  string        `gorm:"type:text" json:"description"`
	Status       ProjectStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      *time.Time    `json:"end_date,omitempty"`
	TotalAmount  float64       `gorm:"not null" json:"total_amount"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	// Relations
	Milestones []Milestone `gorm:"foreignKey:ProjectID" json:"milestones"`
}

type Milestone struct {
	ID              string          `gorm:"primarykey;type:varchar(64)" json:"id"`
	ProjectID       string          `gorm:"type:varchar(64);not null;index" json:"-"`
	Position        int             `gorm:"not null" json:"position"`
	Title           string          `gorm:"type:varchar(255);not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Amount          float64         `gorm:"not null" json:"amount"`
	Status          MilestoneStatus `gorm:"type:varchar(20);not null" json:"status"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	CompletedDate   *time.Time      `json:"completed_date,omitempty"`
	PaymentIntentID string          `gorm:"type:varchar(255)" json:"-"`
}

func (p Project) MilestonesTotal() float64 {
	var total float64
	for _, m := range p.Milestones {
		total += m.Amount
	}
	return total
}

// AmountsBalanced reports whether the milestone plan adds up to the total.
func (p Project) AmountsBalanced() bool {
	return math.Abs(p.MilestonesTotal()-p.TotalAmount) < 0.005
}

// Progress is the percentage of milestones completed or paid.
func (p Project) Progress() int {
	if len(p.Milestones) == 0 {
		return 0
	}
	done := 0
	for _, m := range p.Milestones {
		if m.Status.Done() {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(p.Milestones)) * 100))
}

func (p Project) HasParticipant(userID string) bool {
	return p.ClientID == userID || p.FreelancerID == userID
}
