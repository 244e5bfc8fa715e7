package services

import (
	"context"
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

func proposalInput() SubmitProposalInput {
	return SubmitProposalInput{
		CoverLetter:       "I have shipped several React dashboards.",
		ProposedBudget:    4200,
		EstimatedDuration: "3 weeks",
	}
}

func (s *ServiceSuite) TestSubmitProposal() {
	proposal, err := s.proposals.Submit(context.Background(), "f1", "j4", proposalInput())
	s.Require().NoError(err)
	s.Equal(models.ProposalPending, proposal.Status)

	job, err := s.jobs.GetJob("j4")
	s.Require().NoError(err)
	s.Equal(8, job.Proposals)

	mine, err := s.proposals.ListMine("f1")
	s.Require().NoError(err)
	s.Len(mine, 2)
	for _, p := range mine {
		s.NotEmpty(p.JobTitle)
	}
}

func (s *ServiceSuite) TestSubmitProposalRejects() {
	ctx := context.Background()

	_, err := s.proposals.Submit(ctx, "f1", "j1", proposalInput())
	s.ErrorIs(err, ErrDuplicateProposal)

	_, err = s.proposals.Submit(ctx, "c2", "j1", proposalInput())
	s.ErrorIs(err, ErrNotFreelancer)

	_, err = s.proposals.Submit(ctx, "f1", "missing", proposalInput())
	s.ErrorIs(err, ErrJobNotFound)

	empty := proposalInput()
	empty.CoverLetter = "  "
	_, err = s.proposals.Submit(ctx, "f1", "j4", empty)
	s.ErrorIs(err, ErrInvalidInput)

	s.Require().NoError(s.db.Model(&models.Job{}).Where("id = ?", "j5").Update("status", models.JobStatusCompleted).Error)
	_, err = s.proposals.Submit(ctx, "f1", "j5", proposalInput())
	s.ErrorIs(err, ErrJobNotOpen)
}

func (s *ServiceSuite) TestSubmitProposalCancelled() {
	slow := NewProposalService(s.proposals.proposalRepo, s.proposals.jobRepo, s.proposals.userRepo, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := slow.Submit(ctx, "f1", "j4", proposalInput())
	s.ErrorIs(err, context.DeadlineExceeded)

	mine, err := s.proposals.ListMine("f1")
	s.Require().NoError(err)
	s.Len(mine, 1)
}

func (s *ServiceSuite) TestListProposalsForJob() {
	proposals, err := s.proposals.ListForJob("c1", "j1")
	s.Require().NoError(err)
	s.Require().Len(proposals, 1)
	s.Equal("pr1", proposals[0].ID)
	s.Require().NotNil(proposals[0].Freelancer)
	s.Equal("f1", proposals[0].Freelancer.ID)

	_, err = s.proposals.ListForJob("c2", "j1")
	s.ErrorIs(err, ErrNotJobOwner)
}

func (s *ServiceSuite) TestDecideProposal() {
	_, err := s.proposals.Decide("c2", "pr1", models.ProposalAccepted)
	s.ErrorIs(err, ErrNotJobOwner)

	_, err = s.proposals.Decide("c1", "pr1", "maybe")
	s.ErrorIs(err, ErrInvalidProposalDecision)

	proposal, err := s.proposals.Decide("c1", "pr1", models.ProposalAccepted)
	s.Require().NoError(err)
	s.Equal(models.ProposalAccepted, proposal.Status)

	job, err := s.jobs.GetJob("j1")
	s.Require().NoError(err)
	s.Equal(models.JobStatusInProgress, job.Status)

	_, err = s.proposals.Decide("c1", "pr1", models.ProposalRejected)
	s.ErrorIs(err, ErrProposalAlreadyDecided)
}
