package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/payment"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
)

func (s *ServiceSuite) TestClientOverview() {
	overview, err := s.dashboard.Overview("c1")
	s.Require().NoError(err)
	s.Equal("client", overview.Stats.UserType)
	s.Equal(2, overview.Stats.OpenJobs)
	s.Equal(1, overview.Stats.PendingProposals)
	s.Zero(overview.Stats.ActiveProjects)
	s.Zero(overview.Stats.UnreadMessages)
	s.Equal([]string{"j4", "j1"}, jobIDs(overview.RecentJobs))
	s.NotNil(overview.ActiveProjects)

	overview, err = s.dashboard.Overview("c2")
	s.Require().NoError(err)
	s.Equal(1, overview.Stats.ActiveProjects)
	s.Equal(1, overview.Stats.UnreadMessages)
	s.Zero(overview.Stats.PendingProposals)
}

func (s *ServiceSuite) TestFreelancerOverview() {
	overview, err := s.dashboard.Overview("f1")
	s.Require().NoError(err)
	s.Equal("freelancer", overview.Stats.UserType)
	s.Equal(5, overview.Stats.OpenJobs)
	s.Equal(1, overview.Stats.PendingProposals)
	s.Equal([]string{"j5", "j4", "j3"}, jobIDs(overview.RecentJobs))

	s.payments.On("Confirm", mock.Anything, "pi_ok", testReturnURL).
		Return(&payment.Result{IntentID: "pi_ok", Status: payment.StatusSucceeded}, nil).Once()
	_, err = s.projects.PayMilestone(context.Background(), "c2", "proj1", "ms1", "pi_ok")
	s.Require().NoError(err)

	overview, err = s.dashboard.Overview("f2")
	s.Require().NoError(err)
	s.Equal(1, overview.Stats.ActiveProjects)
	s.Equal(500.0, overview.Stats.MoneyTotal)
	s.Require().Len(overview.ActiveProjects, 1)
	s.Equal("proj1", overview.ActiveProjects[0].ID)

	_, err = s.dashboard.Overview("missing")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *ServiceSuite) TestDashboardJobs() {
	resp, err := s.dashboard.Jobs("c1", "", query.NewSorter(JobSortDate))
	s.Require().NoError(err)
	s.Equal(JobTabAll, resp.Tab)
	s.Equal([]string{"j4", "j1"}, jobIDs(resp.Jobs))

	byProposals := query.NewSorter(JobSortProposals).Select(JobSortProposals)
	resp, err = s.dashboard.Jobs("c1", JobTabActive, byProposals)
	s.Require().NoError(err)
	s.Equal(query.Ascending, resp.Sort.Order)
	s.Equal([]string{"j4", "j1"}, jobIDs(resp.Jobs))

	for _, tab := range []string{JobTabCompleted, JobTabDraft} {
		resp, err = s.dashboard.Jobs("c1", tab, query.NewSorter(JobSortDate))
		s.Require().NoError(err, tab)
		s.Empty(resp.Jobs, tab)
	}

	_, err = s.dashboard.Jobs("c1", "archived", query.NewSorter(JobSortDate))
	s.ErrorIs(err, ErrUnknownJobTab)

	_, err = s.dashboard.Jobs("c1", JobTabAll, query.NewSorter("salary"))
	s.ErrorIs(err, ErrUnknownSortBy)
}

func (s *ServiceSuite) TestDashboardJobsForFreelancer() {
	resp, err := s.dashboard.Jobs("f1", JobTabAll, query.NewSorter(JobSortProposals))
	s.Require().NoError(err)
	s.Equal([]string{"j3", "j1", "j5", "j2", "j4"}, jobIDs(resp.Jobs))

	_, err = s.dashboard.Jobs("missing", JobTabAll, query.NewSorter(JobSortDate))
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *ServiceSuite) TestDashboardStorageFailure() {
	s.Require().NoError(s.db.Migrator().DropTable(&models.User{}))

	_, err := s.dashboard.Overview("c1")
	s.Require().Error(err)
	s.NotErrorIs(err, ErrUserNotFound)

	_, err = s.dashboard.Jobs("c1", JobTabAll, query.NewSorter(JobSortDate))
	s.Require().Error(err)
	s.NotErrorIs(err, ErrUserNotFound)
}
