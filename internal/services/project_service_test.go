package services

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/payment"
)

const testReturnURL = "https://app.test/payment-success"

func (s *ServiceSuite) TestListProjectsByTab() {
	all, err := s.projects.ListProjects("f2", "")
	s.Require().NoError(err)
	s.Equal(ProjectTabAll, all.Tab)
	s.Require().Len(all.Projects, 1)
	p := all.Projects[0]
	s.Equal(33, p.Progress)
	s.True(p.AmountsBalanced)
	s.Equal(2300.0, p.MilestonesTotal)
	s.Require().NotNil(p.Client)
	s.Equal("c2", p.Client.ID)

	completed, err := s.projects.ListProjects("c2", ProjectTabCompleted)
	s.Require().NoError(err)
	s.Empty(completed.Projects)

	none, err := s.projects.ListProjects("f1", ProjectTabActive)
	s.Require().NoError(err)
	s.Empty(none.Projects)

	_, err = s.projects.ListProjects("f2", "archived")
	s.ErrorIs(err, ErrUnknownProjectTab)
}

func (s *ServiceSuite) TestGetProject() {
	project, err := s.projects.GetProject("c2", "proj1")
	s.Require().NoError(err)
	s.Require().Len(project.Milestones, 3)
	for i, m := range project.Milestones {
		s.Equal(i+1, m.Position)
	}

	_, err = s.projects.GetProject("c1", "proj1")
	s.ErrorIs(err, ErrNotProjectParticipant)

	_, err = s.projects.GetProject("c2", "missing")
	s.ErrorIs(err, ErrProjectNotFound)
}

func (s *ServiceSuite) TestAdvanceMilestone() {
	project, err := s.projects.AdvanceMilestone("f2", "proj1", "ms2", models.MilestoneCompleted)
	s.Require().NoError(err)
	s.Equal(67, project.Progress)

	_, err = s.projects.AdvanceMilestone("f2", "proj1", "ms3", models.MilestoneCompleted)
	s.ErrorIs(err, ErrInvalidMilestoneStep)

	_, err = s.projects.AdvanceMilestone("c2", "proj1", "ms3", models.MilestoneInProgress)
	s.ErrorIs(err, ErrNotProjectFreelancer)

	_, err = s.projects.AdvanceMilestone("f2", "proj1", "ms1", models.MilestonePaid)
	s.ErrorIs(err, ErrMilestoneNeedsPayment)

	_, err = s.projects.AdvanceMilestone("f2", "proj1", "ms9", models.MilestoneInProgress)
	s.ErrorIs(err, ErrMilestoneNotFound)

	_, err = s.projects.AdvanceMilestone("f2", "proj1", "ms3", "blocked")
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ServiceSuite) TestPayMilestone() {
	s.payments.On("Confirm", mock.Anything, "pi_ok", testReturnURL).
		Return(&payment.Result{IntentID: "pi_ok", Status: payment.StatusSucceeded}, nil).Once()

	resp, err := s.projects.PayMilestone(context.Background(), "c2", "proj1", "ms1", "pi_ok")
	s.Require().NoError(err)
	s.Equal(models.MilestonePaid, resp.Milestone.Status)
	s.Equal(payment.StatusSucceeded, resp.Status)

	var stored models.Milestone
	s.Require().NoError(s.db.First(&stored, "id = ?", "ms1").Error)
	s.Equal(models.MilestonePaid, stored.Status)
	s.Equal("pi_ok", stored.PaymentIntentID)
	s.payments.AssertExpectations(s.T())
}

func (s *ServiceSuite) TestPayMilestoneDeclined() {
	s.payments.On("Confirm", mock.Anything, "pi_declined", testReturnURL).
		Return(nil, &payment.Error{Code: "card_declined", Message: "Your card was declined."}).Once()

	_, err := s.projects.PayMilestone(context.Background(), "c2", "proj1", "ms1", "pi_declined")
	s.ErrorIs(err, ErrPaymentFailed)
	var paymentErr *PaymentError
	s.Require().True(errors.As(err, &paymentErr))
	s.Equal("Your card was declined.", paymentErr.Message)

	var stored models.Milestone
	s.Require().NoError(s.db.First(&stored, "id = ?", "ms1").Error)
	s.Equal(models.MilestoneCompleted, stored.Status)
}

func (s *ServiceSuite) TestPayMilestoneRequiresAction() {
	s.payments.On("Confirm", mock.Anything, "pi_3ds", testReturnURL).
		Return(&payment.Result{IntentID: "pi_3ds", Status: payment.StatusRequiresAction, RedirectURL: "https://hooks.stripe.test/3ds"}, nil).Once()

	resp, err := s.projects.PayMilestone(context.Background(), "c2", "proj1", "ms1", "pi_3ds")
	s.ErrorIs(err, ErrPaymentRequiresAction)
	s.Require().NotNil(resp)
	s.Equal("https://hooks.stripe.test/3ds", resp.RedirectURL)
	s.Equal(models.MilestoneCompleted, resp.Milestone.Status)
}

func (s *ServiceSuite) TestPayMilestoneProcessingStaysUnpaid() {
	s.payments.On("Confirm", mock.Anything, "pi_slow", testReturnURL).
		Return(&payment.Result{IntentID: "pi_slow", Status: payment.StatusProcessing}, nil).Once()

	resp, err := s.projects.PayMilestone(context.Background(), "c2", "proj1", "ms1", "pi_slow")
	s.ErrorIs(err, ErrPaymentPending)
	s.Require().NotNil(resp)
	s.Equal(payment.StatusProcessing, resp.Status)

	var stored models.Milestone
	s.Require().NoError(s.db.First(&stored, "id = ?", "ms1").Error)
	s.Equal(models.MilestoneCompleted, stored.Status)
	s.Empty(stored.PaymentIntentID)
}

func (s *ServiceSuite) TestPayMilestoneRejectsBeforeCallingProvider() {
	ctx := context.Background()

	_, err := s.projects.PayMilestone(ctx, "c2", "proj1", "ms2", "pi_x")
	s.ErrorIs(err, ErrMilestoneNotPayable)

	_, err = s.projects.PayMilestone(ctx, "f2", "proj1", "ms1", "pi_x")
	s.ErrorIs(err, ErrNotProjectClient)

	_, err = s.projects.PayMilestone(ctx, "c2", "proj1", "ms1", " ")
	s.ErrorIs(err, ErrInvalidInput)

	s.payments.AssertNotCalled(s.T(), "Confirm", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ServiceSuite) TestPayMilestoneWithoutProcessor() {
	svc := NewProjectService(s.projects.projectRepo, s.projects.proposalRepo, s.projects.jobRepo, s.projects.userRepo, payment.Disabled{}, testReturnURL)
	_, err := svc.PayMilestone(context.Background(), "c2", "proj1", "ms1", "pi_ok")
	s.ErrorIs(err, ErrPaymentsNotConfigured)
}

func (s *ServiceSuite) TestPayingEveryMilestoneCompletesProject() {
	s.payments.On("Confirm", mock.Anything, mock.Anything, testReturnURL).
		Return(&payment.Result{IntentID: "pi_all", Status: payment.StatusSucceeded}, nil)

	_, err := s.projects.AdvanceMilestone("f2", "proj1", "ms2", models.MilestoneCompleted)
	s.Require().NoError(err)
	_, err = s.projects.AdvanceMilestone("f2", "proj1", "ms3", models.MilestoneInProgress)
	s.Require().NoError(err)
	_, err = s.projects.AdvanceMilestone("f2", "proj1", "ms3", models.MilestoneCompleted)
	s.Require().NoError(err)

	for _, id := range []string{"ms1", "ms2", "ms3"} {
		_, err := s.projects.PayMilestone(context.Background(), "c2", "proj1", id, "pi_all")
		s.Require().NoError(err, id)
	}

	project, err := s.projects.GetProject("c2", "proj1")
	s.Require().NoError(err)
	s.Equal(models.ProjectCompleted, project.Status)
	s.NotNil(project.EndDate)
	s.Equal(100, project.Progress)

	job, err := s.jobs.GetJob("j2")
	s.Require().NoError(err)
	s.Equal(models.JobStatusCompleted, job.Status)
}

func (s *ServiceSuite) TestCreateProject() {
	proposal, err := s.proposals.Submit(context.Background(), "f1", "j4", proposalInput())
	s.Require().NoError(err)

	input := CreateProjectInput{
		ProposalID:  proposal.ID,
		TotalAmount: 4200,
		Milestones: []MilestoneInput{
			{Title: "API", Amount: 2000},
			{Title: "Frontend", Amount: 2200},
		},
	}

	_, err = s.projects.CreateProject("c1", input)
	s.ErrorIs(err, ErrProposalNotAccepted)

	_, err = s.proposals.Decide("c1", proposal.ID, models.ProposalAccepted)
	s.Require().NoError(err)

	_, err = s.projects.CreateProject("c2", input)
	s.ErrorIs(err, ErrNotJobOwner)

	unbalanced := input
	unbalanced.TotalAmount = 5000
	_, err = s.projects.CreateProject("c1", unbalanced)
	s.ErrorIs(err, ErrUnbalancedMilestones)

	project, err := s.projects.CreateProject("c1", input)
	s.Require().NoError(err)
	s.Equal("f1", project.FreelancerID)
	s.Equal(models.ProjectActive, project.Status)
	s.Require().Len(project.Milestones, 2)
	s.Equal(2, project.Milestones[1].Position)
	s.Zero(project.Progress)

	_, err = s.projects.CreateProject("c1", input)
	s.ErrorIs(err, ErrProjectExists)

	_, err = s.projects.CreateProject("c2", CreateProjectInput{ProposalID: "pr2", TotalAmount: 100, Milestones: []MilestoneInput{{Title: "x", Amount: 100}}})
	s.ErrorIs(err, ErrProjectExists)
}
