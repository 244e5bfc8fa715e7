package handlers

import (
	"net/http"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/payment"
)

func (s *HandlerSuite) TestProposalLifecycle() {
	proposal := map[string]interface{}{
		"cover_letter":       "I build React apps for a living.",
		"proposed_budget":    4800,
		"estimated_duration": "1 month",
	}

	w := s.do(http.MethodPost, "/api/jobs/j4/proposals", proposal, s.login(david))
	s.requireError(w, http.StatusForbidden, "FORBIDDEN")

	freelancer := s.login(sophie)
	w = s.do(http.MethodPost, "/api/jobs/j4/proposals", proposal, freelancer)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created models.Proposal
	s.decode(w, &created)
	s.Equal(models.ProposalPending, created.Status)

	w = s.do(http.MethodPost, "/api/jobs/j4/proposals", proposal, freelancer)
	s.requireError(w, http.StatusConflict, "CONFLICT")

	w = s.do(http.MethodGet, "/api/proposals", nil, freelancer)
	s.Require().Equal(http.StatusOK, w.Code)
	var mine dto.ProposalListResponse
	s.decode(w, &mine)
	s.Len(mine.Proposals, 2)

	client := s.login(david)
	w = s.do(http.MethodGet, "/api/jobs/j4/proposals", nil, client)
	s.Require().Equal(http.StatusOK, w.Code)
	var onJob dto.ProposalListResponse
	s.decode(w, &onJob)
	s.Require().Len(onJob.Proposals, 1)
	s.Equal("f1", onJob.Proposals[0].Freelancer.ID)

	w = s.do(http.MethodPatch, "/api/proposals/"+created.ID, map[string]string{"status": "accepted"}, s.login(sarah))
	s.requireError(w, http.StatusForbidden, "FORBIDDEN")

	w = s.do(http.MethodPatch, "/api/proposals/"+created.ID, map[string]string{"status": "accepted"}, client)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPatch, "/api/proposals/"+created.ID, map[string]string{"status": "rejected"}, client)
	s.requireError(w, http.StatusUnprocessableEntity, "INVALID_OPERATION")

	w = s.do(http.MethodPost, "/api/projects", map[string]interface{}{
		"proposal_id":  created.ID,
		"total_amount": 4800,
		"milestones": []map[string]interface{}{
			{"title": "Backend", "amount": 3000},
			{"title": "Frontend", "amount": 1000},
		},
	}, client)
	s.requireError(w, http.StatusBadRequest, "INVALID_INPUT")

	w = s.do(http.MethodPost, "/api/projects", map[string]interface{}{
		"proposal_id":  created.ID,
		"total_amount": 4800,
		"milestones": []map[string]interface{}{
			{"title": "Backend", "amount": 3000},
			{"title": "Frontend", "amount": 1800},
		},
	}, client)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var project dto.ProjectDTO
	s.decode(w, &project)
	s.True(project.AmountsBalanced)
	s.Len(project.Milestones, 2)
}

func (s *HandlerSuite) TestMessaging() {
	client := s.login(sarah)

	w := s.do(http.MethodGet, "/api/conversations", nil, client)
	s.Require().Equal(http.StatusOK, w.Code)
	var convs dto.ConversationListResponse
	s.decode(w, &convs)
	s.Equal(1, convs.Unread)

	w = s.do(http.MethodGet, "/api/conversations/f2", nil, client)
	s.Require().Equal(http.StatusOK, w.Code)
	var thread dto.ThreadResponse
	s.decode(w, &thread)
	s.Len(thread.Messages, 2)

	w = s.do(http.MethodGet, "/api/conversations", nil, client)
	s.decode(w, &convs)
	s.Zero(convs.Unread)

	w = s.do(http.MethodPost, "/api/messages", map[string]string{"receiver_id": "f2", "content": "See you Thursday"}, client)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.do(http.MethodPost, "/api/messages", map[string]string{"receiver_id": "ghost", "content": "hello"}, client)
	s.requireError(w, http.StatusNotFound, "NOT_FOUND")
}

func (s *HandlerSuite) TestProjectAccess() {
	w := s.do(http.MethodGet, "/api/projects/proj1", nil, s.login(thomas))
	s.Require().Equal(http.StatusOK, w.Code)
	var project dto.ProjectDTO
	s.decode(w, &project)
	s.Equal(33, project.Progress)

	w = s.do(http.MethodGet, "/api/projects/proj1", nil, s.login(david))
	s.requireError(w, http.StatusNotFound, "NOT_FOUND")

	w = s.do(http.MethodGet, "/api/projects?tab=active", nil, s.login(sarah))
	s.Require().Equal(http.StatusOK, w.Code)
	var list dto.ProjectListResponse
	s.decode(w, &list)
	s.Len(list.Projects, 1)
}

func (s *HandlerSuite) TestMilestoneUpdate() {
	freelancer := s.login(thomas)
	w := s.do(http.MethodPatch, "/api/projects/proj1/milestones/ms2", map[string]string{"status": "completed"}, freelancer)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var project dto.ProjectDTO
	s.decode(w, &project)
	s.Equal(67, project.Progress)

	w = s.do(http.MethodPatch, "/api/projects/proj1/milestones/ms3", map[string]string{"status": "completed"}, freelancer)
	s.requireError(w, http.StatusUnprocessableEntity, "INVALID_OPERATION")

	w = s.do(http.MethodPatch, "/api/projects/proj1/milestones/ms3", map[string]string{"status": "in-progress"}, s.login(sarah))
	s.requireError(w, http.StatusForbidden, "FORBIDDEN")
}

func (s *HandlerSuite) TestPayMilestone() {
	client := s.login(sarah)
	body := map[string]string{"payment_intent_id": "pi_123"}

	w := s.do(http.MethodPost, "/api/projects/proj1/milestones/ms2/pay", body, client)
	s.requireError(w, http.StatusUnprocessableEntity, "INVALID_OPERATION")
	s.Zero(s.payments.calls)

	w = s.do(http.MethodPost, "/api/projects/proj1/milestones/ms1/pay", body, s.login(thomas))
	s.requireError(w, http.StatusForbidden, "FORBIDDEN")

	w = s.do(http.MethodPost, "/api/projects/proj1/milestones/ms1/pay", body, client)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.PaymentResponse
	s.decode(w, &resp)
	s.Equal(models.MilestonePaid, resp.Milestone.Status)
	s.Equal("pi_123", resp.PaymentIntentID)
	s.Equal(1, s.payments.calls)
}

func (s *HandlerSuite) TestPayMilestoneDeclined() {
	s.payments.err = &payment.Error{Code: "card_declined", Message: "Your card has insufficient funds."}

	w := s.do(http.MethodPost, "/api/projects/proj1/milestones/ms1/pay", map[string]string{"payment_intent_id": "pi_123"}, s.login(sarah))
	apiErr := s.requireError(w, http.StatusPaymentRequired, "PAYMENT_FAILED")
	s.Equal("Your card has insufficient funds.", apiErr.Message)
}

func (s *HandlerSuite) TestPayMilestoneRequiresAction() {
	s.payments.result = &payment.Result{Status: payment.StatusRequiresAction, RedirectURL: "https://hooks.stripe.test/redirect"}

	w := s.do(http.MethodPost, "/api/projects/proj1/milestones/ms1/pay", map[string]string{"payment_intent_id": "pi_123"}, s.login(sarah))
	s.Require().Equal(http.StatusAccepted, w.Code, w.Body.String())
	var resp dto.PaymentResponse
	s.decode(w, &resp)
	s.Equal("https://hooks.stripe.test/redirect", resp.RedirectURL)
	s.Equal(models.MilestoneCompleted, resp.Milestone.Status)
}

func (s *HandlerSuite) TestPayMilestoneProcessing() {
	s.payments.result = &payment.Result{IntentID: "pi_123", Status: payment.StatusProcessing}

	w := s.do(http.MethodPost, "/api/projects/proj1/milestones/ms1/pay", map[string]string{"payment_intent_id": "pi_123"}, s.login(sarah))
	s.Require().Equal(http.StatusAccepted, w.Code, w.Body.String())
	var resp dto.PaymentResponse
	s.decode(w, &resp)
	s.Equal(payment.StatusProcessing, resp.Status)
	s.Equal(models.MilestoneCompleted, resp.Milestone.Status)
}

func (s *HandlerSuite) TestPayMilestoneWithoutProcessor() {
	r := s.newRouter(payment.Disabled{})
	w := s.doOn(r, http.MethodPost, "/api/auth/login", map[string]string{"email": sarah, "password": demoPassword}, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.doOn(r, http.MethodPost, "/api/projects/proj1/milestones/ms1/pay", map[string]string{"payment_intent_id": "pi_123"}, w.Result().Cookies())
	s.requireError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE")
}
