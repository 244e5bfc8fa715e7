package dto

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// JobDTO is a job with its client resolved at read time
type JobDTO struct {
	models.Job
	Client *UserDTO `json:"client,omitempty"`
}

// JobListResponse represents a filtered, sorted, paginated list of jobs
type JobListResponse struct {
	Jobs       []JobDTO                 `json:"jobs"`
	Sort       query.Sorter             `json:"sort"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// JobMetaResponse lists the vocabularies offered by job forms and filters
type JobMetaResponse struct {
	Skills           []string        `json:"skills"`
	Categories       []string        `json:"categories"`
	ExperienceLevels []string        `json:"experience_levels"`
	BudgetTypes      []string        `json:"budget_types"`
	RateBuckets      []RateBucketDTO `json:"rate_buckets"`
	Availability     []string        `json:"availability"`
}

type RateBucketDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FreelancerListResponse represents a filtered page of freelancers
type FreelancerListResponse struct {
	Freelancers []UserDTO                `json:"freelancers"`
	Pagination  utils.PaginationResponse `json:"pagination"`
}

// ClientDetailResponse is a client profile with the jobs it has open
type ClientDetailResponse struct {
	Client   UserDTO      `json:"client"`
	OpenJobs []models.Job `json:"open_jobs"`
}
