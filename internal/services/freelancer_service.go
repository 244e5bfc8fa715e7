package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/metrics"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

var (
	ErrFreelancerNotFound = errors.New("freelancer not found")
	ErrClientNotFound     = errors.New("client not found")
)

// FreelancerFilter holds the criteria of the freelancer search
type FreelancerFilter struct {
	Search string
	// Rate is a bucket such as "30-60" or "100"; anything unreadable matches all
	Rate         string
	Availability models.Availability
	Skills       []string
}

func profileOf(u models.User) models.FreelancerProfile {
	if u.FreelancerProfile == nil {
		return models.FreelancerProfile{}
	}
	return *u.FreelancerProfile
}

func (f FreelancerFilter) Predicates() []query.Predicate[models.User] {
	return []query.Predicate[models.User]{
		query.Text(f.Search,
			func(u models.User) string { return u.Name },
			func(u models.User) string { return profileOf(u).Title },
		),
		query.Range(query.ParseRange(f.Rate), func(u models.User) float64 { return profileOf(u).HourlyRate }),
		query.Equal(f.Availability, func(u models.User) models.Availability { return profileOf(u).Availability }),
		query.Intersects(f.Skills, func(u models.User) []string { return profileOf(u).Skills }),
	}
}

// PeopleService serves freelancer search and public profiles
type PeopleService struct {
	userRepo repository.UserRepository
	jobRepo  repository.JobRepository
}

// NewPeopleService creates a new PeopleService
func NewPeopleService(userRepo repository.UserRepository, jobRepo repository.JobRepository) *PeopleService {
	return &PeopleService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

// ListFreelancers filters the freelancers in catalog order and pages them.
func (s *PeopleService) ListFreelancers(filter FreelancerFilter, params utils.PaginationParams) (*dto.FreelancerListResponse, error) {
	freelancers, err := s.userRepo.ListByType(models.UserTypeFreelancer)
	if err != nil {
		return nil, fmt.Errorf("failed to list freelancers: %w", err)
	}

	matched := query.Apply(freelancers, filter.Predicates()...)
	metrics.RecordListingResults("freelancers", len(matched))

	return &dto.FreelancerListResponse{
		Freelancers: dto.ToUserDTOs(utils.PaginateSlice(matched, params)),
		Pagination:  params.Response(len(matched)),
	}, nil
}

func (s *PeopleService) findUser(id string, userType models.UserType, notFound error) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user.UserType != userType {
		return nil, notFound
	}
	return user, nil
}

// GetFreelancer returns a freelancer's public profile with portfolio.
func (s *PeopleService) GetFreelancer(id string) (*dto.UserDTO, error) {
	user, err := s.findUser(id, models.UserTypeFreelancer, ErrFreelancerNotFound)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserDTO(*user)
	return &out, nil
}

// GetClient returns a client's public profile and the jobs it has open.
func (s *PeopleService) GetClient(id string) (*dto.ClientDetailResponse, error) {
	user, err := s.findUser(id, models.UserTypeClient, ErrClientNotFound)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByClient(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list client jobs: %w", err)
	}
	open := query.Apply(jobs, query.Equal(models.JobStatusOpen, func(j models.Job) models.JobStatus { return j.Status }))

	return &dto.ClientDetailResponse{
		Client:   dto.ToUserDTO(*user),
		OpenJobs: open,
	}, nil
}
