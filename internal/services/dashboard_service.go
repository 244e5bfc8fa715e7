package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

var ErrUnknownJobTab = errors.New("unknown job tab")

// Dashboard job tabs
const (
	JobTabAll       = "all"
	JobTabActive    = "active"
	JobTabCompleted = "completed"
	JobTabDraft     = "draft"
)

const recentJobsLimit = 3

// DashboardService assembles the per-user dashboard views
type DashboardService struct {
	userRepo     repository.UserRepository
	jobRepo      repository.JobRepository
	proposalRepo repository.ProposalRepository
	messageRepo  repository.MessageRepository
	projects     *ProjectService
	jobs         *JobService
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	userRepo repository.UserRepository,
	jobRepo repository.JobRepository,
	proposalRepo repository.ProposalRepository,
	messageRepo repository.MessageRepository,
	projects *ProjectService,
	jobs *JobService,
) *DashboardService {
	return &DashboardService{
		userRepo:     userRepo,
		jobRepo:      jobRepo,
		proposalRepo: proposalRepo,
		messageRepo:  messageRepo,
		projects:     projects,
		jobs:         jobs,
	}
}

func jobStatus(j models.Job) models.JobStatus { return j.Status }

// Overview returns the headline stats, recent jobs and active projects.
// Clients see their own jobs and money spent; freelancers see open jobs
// and money earned.
func (s *DashboardService) Overview(userID string) (*dto.DashboardResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if user.IsClient() {
		jobs, err = s.jobRepo.ListByClient(userID)
	} else {
		jobs, err = s.jobRepo.List()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	open := query.Apply(jobs, query.Equal(models.JobStatusOpen, jobStatus))

	projects, err := s.projects.ListProjects(userID, ProjectTabAll)
	if err != nil {
		return nil, err
	}
	var active []dto.ProjectDTO
	var moneyTotal float64
	for _, p := range projects.Projects {
		if p.Status == models.ProjectActive {
			active = append(active, p)
		}
		for _, m := range p.Milestones {
			if m.Status == models.MilestonePaid {
				moneyTotal += m.Amount
			}
		}
	}
	if active == nil {
		active = []dto.ProjectDTO{}
	}

	unread, err := s.messageRepo.CountUnread(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	pending, err := s.pendingProposals(user, jobs)
	if err != nil {
		return nil, err
	}

	recentSource := jobs
	if !user.IsClient() {
		recentSource = open
	}
	recent := query.SortStable(recentSource, jobOrderings[JobSortDate], query.Descending)
	if len(recent) > recentJobsLimit {
		recent = recent[:recentJobsLimit]
	}
	recentDTOs, err := s.jobs.withClients(recent)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		User: dto.ToUserDTO(*user),
		Stats: dto.DashboardStats{
			UserType:         string(user.UserType),
			OpenJobs:         len(open),
			ActiveProjects:   len(active),
			UnreadMessages:   int(unread),
			PendingProposals: pending,
			MoneyTotal:       moneyTotal,
		},
		RecentJobs:     recentDTOs,
		ActiveProjects: active,
	}, nil
}

func (s *DashboardService) pendingProposals(user *models.User, clientJobs []models.Job) (int, error) {
	if user.IsClient() {
		ids := make([]string, 0, len(clientJobs))
		for _, j := range clientJobs {
			ids = append(ids, j.ID)
		}
		count, err := s.proposalRepo.CountPendingForJobs(ids)
		if err != nil {
			return 0, fmt.Errorf("failed to count proposals: %w", err)
		}
		return int(count), nil
	}

	mine, err := s.proposalRepo.ListByFreelancer(user.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to list proposals: %w", err)
	}
	return query.Count(mine, query.Equal(models.ProposalPending, func(p models.Proposal) models.ProposalStatus { return p.Status })), nil
}

func jobTabPredicate(tab string) (query.Predicate[models.Job], error) {
	switch tab {
	case "", JobTabAll:
		return query.All[models.Job](), nil
	case JobTabActive:
		return query.Equal(models.JobStatusOpen, jobStatus), nil
	case JobTabCompleted:
		return query.Equal(models.JobStatusCompleted, jobStatus), nil
	case JobTabDraft:
		// Jobs have no draft state yet
		return func(models.Job) bool { return false }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownJobTab, tab)
}

func (s *DashboardService) findUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Jobs is the dashboard job table under one tab, sorted by sorter. Clients
// see the jobs they posted, freelancers the whole catalog.
func (s *DashboardService) Jobs(userID, tab string, sorter query.Sorter) (*dto.DashboardJobsResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	pred, err := jobTabPredicate(tab)
	if err != nil {
		return nil, err
	}
	if tab == "" {
		tab = JobTabAll
	}
	less, err := JobOrdering(sorter.Key)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if user.IsClient() {
		jobs, err = s.jobRepo.ListByClient(user.ID)
	} else {
		jobs, err = s.jobRepo.List()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	matched := query.Run(jobs, query.Spec[models.Job]{
		Predicates: []query.Predicate[models.Job]{pred},
		Less:       less,
		Order:      sorter.Order,
	})

	out, err := s.jobs.withClients(matched)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardJobsResponse{Jobs: out, Tab: tab, Sort: sorter}, nil
}
