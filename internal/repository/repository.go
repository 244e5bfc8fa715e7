package repository

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// UserRepository defines the interface for account and profile data access
type UserRepository interface {
	// Create creates a user together with any profile and settings attached
	Create(user *models.User) error

	// FindByID finds a user by ID with profiles preloaded
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email with profiles preloaded
	FindByEmail(email string) (*models.User, error)

	// FindByIDs returns the users among ids that exist, keyed by ID
	FindByIDs(ids []string) (map[string]models.User, error)

	// ListByType lists every user of one type in catalog order
	ListByType(userType models.UserType) ([]models.User, error)

	// Update saves the account columns of a user
	Update(user *models.User) error

	// SaveFreelancerProfile upserts a freelancer profile
	SaveFreelancerProfile(profile *models.FreelancerProfile) error

	// SaveClientProfile upserts a client profile
	SaveClientProfile(profile *models.ClientProfile) error

	// FindNotificationSettings returns the stored settings of a user
	FindNotificationSettings(userID string) (*models.NotificationSettings, error)

	// SaveNotificationSettings upserts notification settings
	SaveNotificationSettings(settings *models.NotificationSettings) error
}

// JobRepository defines the interface for job data access
type JobRepository interface {
	// Create stores a job and bumps the client's posted counter
	Create(job *models.Job) error

	// FindByID finds a job by ID
	FindByID(id string) (*models.Job, error)

	// List returns every job in catalog order
	List() ([]models.Job, error)

	// ListByClient returns the jobs posted by one client
	ListByClient(clientID string) ([]models.Job, error)

	// UpdateStatus changes the lifecycle status of a job
	UpdateStatus(id string, status models.JobStatus) error
}

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	// Create stores a proposal unless the freelancer already has an active
	// one on the job, and bumps the job's proposal counter
	Create(proposal *models.Proposal) error

	// FindByID finds a proposal by ID
	FindByID(id string) (*models.Proposal, error)

	// ListByJob returns the proposals received by a job, oldest first
	ListByJob(jobID string) ([]models.Proposal, error)

	// ListByFreelancer returns the proposals sent by a freelancer, newest first
	ListByFreelancer(freelancerID string) ([]models.Proposal, error)

	// CountPendingForJobs counts pending proposals across jobIDs
	CountPendingForJobs(jobIDs []string) (int64, error)

	// Decide sets the status of a pending proposal; accepting also moves
	// the job in progress
	Decide(proposal *models.Proposal, status models.ProposalStatus) error
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	// Create stores a message
	Create(message *models.Message) error

	// ListForUser returns every message sent or received by a user, oldest first
	ListForUser(userID string) ([]models.Message, error)

	// ListThread returns one page of the messages exchanged by a and b, oldest first
	ListThread(a, b string, params utils.PaginationParams) ([]models.Message, int64, error)

	// MarkThreadRead marks everything other sent to reader as read
	MarkThreadRead(readerID, otherID string) (int64, error)

	// CountUnread counts messages received by a user and not yet read
	CountUnread(userID string) (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create stores a project with its milestone plan
	Create(project *models.Project) error

	// FindByID finds a project with milestones in plan order
	FindByID(id string) (*models.Project, error)

	// ListByParticipant returns the projects a user is client or freelancer on
	ListByParticipant(userID string) ([]models.Project, error)

	// UpdateMilestone saves a milestone and completes the project once every
	// milestone is paid
	UpdateMilestone(project *models.Project, milestone *models.Milestone) error
}
