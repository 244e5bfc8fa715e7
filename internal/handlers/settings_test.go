package handlers

import (
	"fmt"
	"net/http"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
)

func (s *HandlerSuite) TestDashboard() {
	w := s.do(http.MethodGet, "/api/dashboard", nil, s.login(david))
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var overview dto.DashboardResponse
	s.decode(w, &overview)
	s.Equal("client", overview.Stats.UserType)
	s.Equal(2, overview.Stats.OpenJobs)
	s.Equal(1, overview.Stats.PendingProposals)

	w = s.do(http.MethodGet, "/api/dashboard", nil, nil)
	s.requireError(w, http.StatusUnauthorized, "UNAUTHORIZED")
}

func (s *HandlerSuite) TestDashboardJobs() {
	client := s.login(david)

	w := s.do(http.MethodGet, "/api/dashboard/jobs", nil, client)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DashboardJobsResponse
	s.decode(w, &resp)
	s.Equal("all", resp.Tab)
	s.Equal(query.Sorter{Key: "date", Order: query.Descending}, resp.Sort)
	s.Require().Len(resp.Jobs, 2)
	s.Equal("j4", resp.Jobs[0].ID)

	w = s.do(http.MethodGet, "/api/dashboard/jobs?tab=draft", nil, client)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &resp)
	s.Empty(resp.Jobs)

	w = s.do(http.MethodGet, "/api/dashboard/jobs?tab=archived", nil, client)
	s.requireError(w, http.StatusBadRequest, "INVALID_INPUT")

	w = s.do(http.MethodGet, "/api/dashboard/jobs?sort=salary", nil, client)
	s.requireError(w, http.StatusBadRequest, "INVALID_INPUT")
}

func (s *HandlerSuite) TestDashboardJobsSortToggle() {
	client := s.login(david)

	w := s.do(http.MethodGet, "/api/dashboard/jobs?sort=proposals", nil, client)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DashboardJobsResponse
	s.decode(w, &resp)
	s.Equal(query.Sorter{Key: "proposals", Order: query.Descending}, resp.Sort)
	s.Equal("j1", resp.Jobs[0].ID)

	path := fmt.Sprintf("/api/dashboard/jobs?sort=proposals&current_sort=%s&current_order=%s", resp.Sort.Key, resp.Sort.Order)
	w = s.do(http.MethodGet, path, nil, client)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &resp)
	s.Equal(query.Sorter{Key: "proposals", Order: query.Ascending}, resp.Sort)
	s.Equal("j4", resp.Jobs[0].ID)

	w = s.do(http.MethodGet, "/api/dashboard/jobs?sort=date&current_sort=proposals&current_order=asc", nil, client)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &resp)
	s.Equal(query.Sorter{Key: "date", Order: query.Descending}, resp.Sort)
}

func (s *HandlerSuite) TestDashboardJobsForFreelancer() {
	w := s.do(http.MethodGet, "/api/dashboard/jobs?tab=active", nil, s.login(sophie))
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DashboardJobsResponse
	s.decode(w, &resp)
	s.Len(resp.Jobs, 5)
}

func (s *HandlerSuite) TestUpdateProfile() {
	cookies := s.login(sophie)

	w := s.do(http.MethodPut, "/api/settings/profile", map[string]interface{}{
		"title":       "Lead Engineer",
		"skills":      "Go, React ,Postgres",
		"hourly_rate": 70,
	}, cookies)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var user dto.UserDTO
	s.decode(w, &user)
	s.Equal("Lead Engineer", user.Title)
	s.Equal([]string{"Go", "React", "Postgres"}, user.Skills)
	s.Equal(70.0, user.HourlyRate)

	w = s.do(http.MethodPut, "/api/settings/profile", map[string]interface{}{"skills": 42}, cookies)
	s.requireError(w, http.StatusBadRequest, "INVALID_INPUT")
}

func (s *HandlerSuite) TestSetupProfile() {
	w := s.do(http.MethodPost, "/api/profile/setup", map[string]interface{}{"industry": "Retail"}, s.login(david))
	s.requireError(w, http.StatusBadRequest, "INVALID_INPUT")
}

func (s *HandlerSuite) TestUpdateAccount() {
	cookies := s.login(sophie)

	w := s.do(http.MethodPut, "/api/settings/account", map[string]string{
		"current_password": demoPassword,
		"new_password":     "another-password",
		"confirm_password": "another-passwork",
	}, cookies)
	apiErr := s.requireError(w, http.StatusBadRequest, "INVALID_INPUT")
	s.Equal("Passwords do not match", apiErr.Message)

	w = s.do(http.MethodPut, "/api/settings/account", map[string]string{"email": thomas}, cookies)
	s.requireError(w, http.StatusConflict, "CONFLICT")

	w = s.do(http.MethodPut, "/api/settings/account", map[string]string{
		"current_password": demoPassword,
		"new_password":     "another-password",
		"confirm_password": "another-password",
	}, cookies)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": sophie, "password": "another-password"}, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerSuite) TestNotifications() {
	cookies := s.login(thomas)

	w := s.do(http.MethodGet, "/api/settings/notifications", nil, cookies)
	s.Require().Equal(http.StatusOK, w.Code)
	var settings models.NotificationSettings
	s.decode(w, &settings)
	s.True(settings.EmailMessages)

	w = s.do(http.MethodPut, "/api/settings/notifications", map[string]bool{"email_messages": false, "email_marketing": true}, cookies)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/settings/notifications", nil, cookies)
	s.decode(w, &settings)
	s.False(settings.EmailMessages)
	s.True(settings.EmailMarketing)
	s.False(settings.EmailPayments)
}
