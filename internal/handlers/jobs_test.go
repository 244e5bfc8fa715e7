package handlers

import (
	"net/http"
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
)

func (s *HandlerSuite) listJobIDs(path string) []string {
	w := s.do(http.MethodGet, path, nil, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.JobListResponse
	s.decode(w, &resp)
	ids := make([]string, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func (s *HandlerSuite) TestListJobs() {
	s.Equal([]string{"j1", "j2", "j3", "j4", "j5"}, s.listJobIDs("/api/jobs"))
	s.Equal([]string{"j1", "j4"}, s.listJobIDs("/api/jobs?skills=React"))
	s.Equal([]string{"j1", "j2", "j4"}, s.listJobIDs("/api/jobs?skills=React,Figma"))
	s.Equal([]string{"j3"}, s.listJobIDs("/api/jobs?min_budget=100&max_budget=1000&budget_type=fixed"))
	s.Equal([]string{"j4", "j1"}, s.listJobIDs("/api/jobs?category=Web+Development&sort=budget"))
	s.Equal([]string{"j1", "j4"}, s.listJobIDs("/api/jobs?category=Web+Development&sort=budget&order=asc"))
	s.Equal([]string{"j5", "j4"}, s.listJobIDs("/api/jobs?sort=date&limit=2"))
}

func (s *HandlerSuite) TestListJobsIgnoresNonFiniteBudget() {
	all := []string{"j1", "j2", "j3", "j4", "j5"}
	s.Equal(all, s.listJobIDs("/api/jobs?max_budget=NaN"))
	s.Equal(all, s.listJobIDs("/api/jobs?min_budget=-Inf"))
	s.Equal(all, s.listJobIDs("/api/jobs?min_budget=NaN&max_budget=Inf"))
}

func (s *HandlerSuite) TestListJobsRejectsUnknownSort() {
	w := s.do(http.MethodGet, "/api/jobs?sort=salary", nil, nil)
	s.requireError(w, http.StatusBadRequest, "INVALID_INPUT")
}

func (s *HandlerSuite) TestGetJob() {
	w := s.do(http.MethodGet, "/api/jobs/j1", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var job dto.JobDTO
	s.decode(w, &job)
	s.Require().NotNil(job.Client)
	s.Equal("David Müller", job.Client.Name)

	w = s.do(http.MethodGet, "/api/jobs/nope", nil, nil)
	s.requireError(w, http.StatusNotFound, "NOT_FOUND")
}

func (s *HandlerSuite) TestJobMeta() {
	w := s.do(http.MethodGet, "/api/jobs/meta", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var meta dto.JobMetaResponse
	s.decode(w, &meta)
	s.Contains(meta.Categories, "Design")
	s.NotEmpty(meta.Skills)
}

func (s *HandlerSuite) TestCreateJob() {
	payload := map[string]interface{}{
		"title":       "Data pipeline in Go",
		"description": "Ingest CSV exports nightly",
		"category":    "Web Development",
		"skills":      []string{"Go", "SQL"},
		"budget_type": "fixed",
		"budget":      2500,
		"experience":  "expert",
		"deadline":    time.Now().Add(14 * 24 * time.Hour).Format(time.RFC3339),
	}

	w := s.do(http.MethodPost, "/api/jobs", payload, nil)
	s.requireError(w, http.StatusUnauthorized, "UNAUTHORIZED")

	w = s.do(http.MethodPost, "/api/jobs", payload, s.login(sophie))
	s.requireError(w, http.StatusForbidden, "FORBIDDEN")

	cookies := s.login(david)
	w = s.do(http.MethodPost, "/api/jobs", payload, cookies)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var job dto.JobDTO
	s.decode(w, &job)
	s.Equal("c1", job.ClientID)
	s.Equal("USD", job.Budget.Currency)

	s.Len(s.listJobIDs("/api/jobs"), 6)

	payload["category"] = "Cooking"
	w = s.do(http.MethodPost, "/api/jobs", payload, cookies)
	apiErr := s.requireError(w, http.StatusBadRequest, "INVALID_INPUT")
	s.Equal("unknown category", apiErr.Message)
}

func (s *HandlerSuite) TestListFreelancers() {
	w := s.do(http.MethodGet, "/api/freelancers?rate=30-60&availability=available", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.FreelancerListResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Freelancers, 2)
	s.Equal("f3", resp.Freelancers[0].ID)
	s.Equal("f1", resp.Freelancers[1].ID)
}

func (s *HandlerSuite) TestProfiles() {
	w := s.do(http.MethodGet, "/api/freelancers/f2", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/freelancers/c1", nil, nil)
	s.requireError(w, http.StatusNotFound, "NOT_FOUND")

	w = s.do(http.MethodGet, "/api/clients/c1", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var client dto.ClientDetailResponse
	s.decode(w, &client)
	s.Len(client.OpenJobs, 2)
}
