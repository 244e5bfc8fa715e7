package models

import (
	"time"

	"gorm.io/gorm"
)

type (
	BudgetType      string
	JobStatus       string
	ExperienceLevel string
)

const (
	BudgetFixed  BudgetType = "fixed"
	BudgetHourly BudgetType = "hourly"

	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"

	ExperienceEntry        ExperienceLevel = "entry"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

func (t BudgetType) Valid() bool {
	return t == BudgetFixed || t == BudgetHourly
}

func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceEntry, ExperienceIntermediate, ExperienceExpert:
		return true
	}
	return false
}

type Budget struct {
	Type     BudgetType `gorm:"type:varchar(10);not null" json:"type"`
	Amount   float64    `gorm:"not null;default:0" json:"amount"`
	Currency string     `gorm:"type:varchar(3);not null" json:"currency"`
}

// Job references its client by ID only; the client record is looked up on read.
type Job struct {
	ID          string          `gorm:"primarykey;type:varchar(64)" json:"id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Skills      []string        `gorm:"serializer:json;type:text" json:"skills"`
	Budget      Budget          `gorm:"embedded;embeddedPrefix:budget_" json:"budget"`
	ClientID    string          `gorm:"type:varchar(64);not null;index" json:"client_id"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
	Status      JobStatus       `gorm:"type:varchar(20);not null;index" json:"status"`
	Proposals   int             `gorm:"column:proposal_count;not null;default:0" json:"proposals"`
	Category    string          `gorm:"type:varchar(100);index" json:"category"`
	Experience  ExperienceLevel `gorm:"type:varchar(20)" json:"experience"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
