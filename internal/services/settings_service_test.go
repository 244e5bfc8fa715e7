package services

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

func (s *ServiceSuite) TestSplitSkills() {
	s.Equal([]string{"Go", "gRPC", "SQL"}, SplitSkills(" Go, gRPC,,SQL , "))
	s.Empty(SplitSkills(""))
}

func (s *ServiceSuite) TestUpdateFreelancerProfile() {
	user, err := s.settings.UpdateProfile("f1", UpdateProfileInput{
		Name:       ptr("Sophie M."),
		Title:      ptr(" Senior Full Stack Developer "),
		Skills:     []string{"Go", "React"},
		HourlyRate: ptr(60.0),
		Company:    ptr("ignored for freelancers"),
	})
	s.Require().NoError(err)
	s.Equal("Sophie M.", user.Name)
	s.Equal("Senior Full Stack Developer", user.FreelancerDetails.Title)
	s.Equal([]string{"Go", "React"}, user.FreelancerDetails.Skills)
	s.Equal(60.0, user.FreelancerDetails.HourlyRate)
	s.Nil(user.ClientDetails)

	stored, err := s.people.GetFreelancer("f1")
	s.Require().NoError(err)
	s.Equal("Senior Full Stack Developer", stored.FreelancerDetails.Title)
	s.Len(stored.Portfolio, 2)
	s.Equal(models.AvailabilityAvailable, stored.Availability)
}

func (s *ServiceSuite) TestUpdateClientProfile() {
	user, err := s.settings.UpdateProfile("c1", UpdateProfileInput{
		Industry: ptr("Fintech"),
		Website:  ptr("https://techcorp.example"),
		Location: ptr("Berlin"),
	})
	s.Require().NoError(err)
	s.Equal("Fintech", user.ClientDetails.Industry)
	s.Require().NotNil(user.ClientDetails.Website)
	s.Equal("https://techcorp.example", *user.ClientDetails.Website)
	s.Equal("Berlin", user.Location)

	user, err = s.settings.UpdateProfile("c1", UpdateProfileInput{Website: ptr("")})
	s.Require().NoError(err)
	s.Nil(user.ClientDetails.Website)

	_, err = s.settings.UpdateProfile("c1", UpdateProfileInput{HourlyRate: ptr(-5.0)})
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.settings.UpdateProfile("missing", UpdateProfileInput{})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *ServiceSuite) TestSetupProfile() {
	_, err := s.settings.SetupProfile("f3", UpdateProfileInput{Title: ptr("SEO Lead")})
	s.ErrorIs(err, ErrProfileIncomplete)

	user, err := s.settings.SetupProfile("f3", UpdateProfileInput{Title: ptr("SEO Lead"), HourlyRate: ptr(40.0)})
	s.Require().NoError(err)
	s.True(user.ProfileComplete)

	_, err = s.settings.SetupProfile("c3", UpdateProfileInput{Company: ptr("  ")})
	s.ErrorIs(err, ErrProfileIncomplete)
}

func (s *ServiceSuite) TestUpdateAccount() {
	_, err := s.settings.UpdateAccount("f1", UpdateAccountInput{Email: "thomas.walker@example.com"})
	s.ErrorIs(err, ErrEmailTaken)

	_, err = s.settings.UpdateAccount("f1", UpdateAccountInput{
		CurrentPassword: demoPassword,
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "brand-new-typo",
	})
	s.ErrorIs(err, ErrPasswordMismatch)

	_, err = s.settings.UpdateAccount("f1", UpdateAccountInput{
		CurrentPassword: "not-my-password",
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	s.ErrorIs(err, ErrWrongPassword)

	_, err = s.settings.UpdateAccount("f1", UpdateAccountInput{})
	s.ErrorIs(err, ErrNoAccountChanges)

	user, err := s.settings.UpdateAccount("f1", UpdateAccountInput{
		Email:           "Sophie@Example.com",
		CurrentPassword: demoPassword,
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	s.Require().NoError(err)
	s.Equal("sophie@example.com", user.Email)

	_, err = s.auth.Authenticate("sophie@example.com", demoPassword)
	s.ErrorIs(err, ErrInvalidCredentials)
	_, err = s.auth.Authenticate("sophie@example.com", "brand-new-pass")
	s.NoError(err)
}

func (s *ServiceSuite) TestNotifications() {
	settings, err := s.settings.Notifications("c1")
	s.Require().NoError(err)
	s.True(settings.EmailProposals)

	settings.EmailProposals = false
	settings.EmailMarketing = true
	_, err = s.settings.UpdateNotifications("c1", *settings)
	s.Require().NoError(err)

	settings, err = s.settings.Notifications("c1")
	s.Require().NoError(err)
	s.False(settings.EmailProposals)
	s.True(settings.EmailMarketing)
}
