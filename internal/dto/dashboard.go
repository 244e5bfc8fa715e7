package dto

import "github.com/yukikurage/freelance-marketplace-api/internal/query"

// DashboardStats are the headline numbers of the dashboard home
type DashboardStats struct {
	UserType         string  `json:"user_type"`
	OpenJobs         int     `json:"open_jobs"`
	ActiveProjects   int     `json:"active_projects"`
	UnreadMessages   int     `json:"unread_messages"`
	PendingProposals int     `json:"pending_proposals"`
	MoneyTotal       float64 `json:"money_total"`
}

type DashboardResponse struct {
	User           UserDTO        `json:"user"`
	Stats          DashboardStats `json:"stats"`
	RecentJobs     []JobDTO       `json:"recent_jobs"`
	ActiveProjects []ProjectDTO   `json:"active_projects"`
}

// DashboardJobsResponse is the client job table with its tab and sort state
type DashboardJobsResponse struct {
	Jobs []JobDTO     `json:"jobs"`
	Tab  string       `json:"tab"`
	Sort query.Sorter `json:"sort"`
}
