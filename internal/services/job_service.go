package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/catalog"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/logger"
	"github.com/yukikurage/freelance-marketplace-api/internal/metrics"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrNotClient     = errors.New("only clients can perform this action")
	ErrNotJobOwner   = errors.New("only the client who posted the job can perform this action")
	ErrUnknownSortBy = errors.New("unknown sort key")
)

// Job sort keys
const (
	JobSortDate      = "date"
	JobSortProposals = "proposals"
	JobSortBudget    = "budget"
)

var jobOrderings = map[string]query.Less[models.Job]{
	JobSortDate:      func(a, b models.Job) bool { return a.CreatedAt.Before(b.CreatedAt) },
	JobSortProposals: func(a, b models.Job) bool { return a.Proposals < b.Proposals },
	JobSortBudget:    func(a, b models.Job) bool { return a.Budget.Amount < b.Budget.Amount },
}

// JobOrdering returns the comparator behind a sort key.
func JobOrdering(key string) (query.Less[models.Job], error) {
	less, ok := jobOrderings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortBy, key)
	}
	return less, nil
}

// JobFilter holds the criteria of the job search. Zero values mean "any".
type JobFilter struct {
	Search     string
	Category   string
	Experience models.ExperienceLevel
	BudgetType models.BudgetType
	Skills     []string
	Budget     *query.NumericRange
	Status     models.JobStatus
}

// Predicates turns the filter into the conjunction applied to the catalog.
func (f JobFilter) Predicates() []query.Predicate[models.Job] {
	return []query.Predicate[models.Job]{
		query.Text(f.Search,
			func(j models.Job) string { return j.Title },
			func(j models.Job) string { return j.Description },
		),
		query.Equal(f.Category, func(j models.Job) string { return j.Category }),
		query.Equal(f.Experience, func(j models.Job) models.ExperienceLevel { return j.Experience }),
		query.Equal(f.BudgetType, func(j models.Job) models.BudgetType { return j.Budget.Type }),
		query.Intersects(f.Skills, func(j models.Job) []string { return j.Skills }),
		query.Range(f.Budget, func(j models.Job) float64 { return j.Budget.Amount }),
		query.Equal(f.Status, func(j models.Job) models.JobStatus { return j.Status }),
	}
}

// JobService handles job search and posting
type JobService struct {
	jobRepo     repository.JobRepository
	userRepo    repository.UserRepository
	postLatency time.Duration
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository, postLatency time.Duration) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		postLatency: postLatency,
	}
}

// ListJobsInput represents the query of the job search page
type ListJobsInput struct {
	Filter JobFilter
	// Sort is nil to keep catalog order
	Sort       *query.Sorter
	Pagination utils.PaginationParams
}

// ListJobs filters, optionally sorts, and pages the job catalog.
func (s *JobService) ListJobs(input ListJobsInput) (*dto.JobListResponse, error) {
	jobs, err := s.jobRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	spec := query.Spec[models.Job]{Predicates: input.Filter.Predicates()}
	sorter := query.Sorter{}
	if input.Sort != nil {
		less, err := JobOrdering(input.Sort.Key)
		if err != nil {
			return nil, err
		}
		spec.Less = less
		spec.Order = input.Sort.Order
		sorter = *input.Sort
	}

	matched := query.Run(jobs, spec)
	metrics.RecordListingResults("jobs", len(matched))

	page := utils.PaginateSlice(matched, input.Pagination)
	withClients, err := s.withClients(page)
	if err != nil {
		return nil, err
	}

	return &dto.JobListResponse{
		Jobs:       withClients,
		Sort:       sorter,
		Pagination: input.Pagination.Response(len(matched)),
	}, nil
}

// GetJob returns a job with its client looked up.
func (s *JobService) GetJob(id string) (*dto.JobDTO, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	out, err := s.withClients([]models.Job{*job})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// withClients resolves the client of every job. A dangling client ID leaves
// the job without one instead of failing the listing.
func (s *JobService) withClients(jobs []models.Job) ([]dto.JobDTO, error) {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if !slices.Contains(ids, j.ClientID) {
			ids = append(ids, j.ClientID)
		}
	}
	clients, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve clients: %w", err)
	}

	out := make([]dto.JobDTO, 0, len(jobs))
	for _, j := range jobs {
		item := dto.JobDTO{Job: j}
		if c, ok := clients[j.ClientID]; ok {
			client := dto.ToUserDTO(c)
			item.Client = &client
		}
		out = append(out, item)
	}
	return out, nil
}

// CreateJobInput represents the post-a-job form
type CreateJobInput struct {
	Title       string                 `validate:"required,max=255"`
	Description string                 `validate:"required"`
	Category    string                 `validate:"required"`
	Skills      []string               `validate:"required,min=1,dive,required"`
	BudgetType  models.BudgetType      `validate:"required,oneof=fixed hourly"`
	Amount      float64                `validate:"gt=0"`
	Currency    string                 `validate:"omitempty,len=3"`
	Experience  models.ExperienceLevel `validate:"required,oneof=entry intermediate expert"`
	Deadline    *time.Time
}

// CreateJob posts an open job for a client after the simulated latency.
func (s *JobService) CreateJob(ctx context.Context, clientID string, input CreateJobInput) (*dto.JobDTO, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if !slices.Contains(catalog.Categories(), input.Category) {
		return nil, invalid("unknown category")
	}
	if input.Deadline != nil && input.Deadline.Before(time.Now()) {
		return nil, invalid("deadline must be in the future")
	}

	client, err := s.userRepo.FindByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !client.IsClient() {
		return nil, ErrNotClient
	}

	if err := simulateLatency(ctx, s.postLatency); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(input.Currency)
	if currency == "" {
		currency = "USD"
	}
	job := &models.Job{
		ID:          utils.NewID(),
		Title:       input.Title,
		Description: input.Description,
		Skills:      input.Skills,
		Budget:      models.Budget{Type: input.BudgetType, Amount: input.Amount, Currency: currency},
		ClientID:    clientID,
		Deadline:    input.Deadline,
		Status:      models.JobStatusOpen,
		Category:    input.Category,
		Experience:  input.Experience,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	logger.L().Info("Job posted", zap.String("job_id", job.ID), zap.String("client_id", clientID))

	clientDTO := dto.ToUserDTO(*client)
	return &dto.JobDTO{Job: *job, Client: &clientDTO}, nil
}

// Meta returns the vocabularies used by the job and freelancer forms.
func (s *JobService) Meta() dto.JobMetaResponse {
	buckets := catalog.RateBuckets()
	rateBuckets := make([]dto.RateBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		rateBuckets = append(rateBuckets, dto.RateBucketDTO{Value: b.Value, Label: b.Label})
	}

	return dto.JobMetaResponse{
		Skills:     catalog.Skills(),
		Categories: catalog.Categories(),
		ExperienceLevels: []string{
			string(models.ExperienceEntry),
			string(models.ExperienceIntermediate),
			string(models.ExperienceExpert),
		},
		BudgetTypes: []string{string(models.BudgetFixed), string(models.BudgetHourly)},
		RateBuckets: rateBuckets,
		Availability: []string{
			string(models.AvailabilityAvailable),
			string(models.AvailabilityPartTime),
			string(models.AvailabilityNotAvailable),
		},
	}
}
