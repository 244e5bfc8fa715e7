package services

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/session"
)

func (s *ServiceSuite) TestAuthenticate() {
	user, err := s.auth.Authenticate("  Sophie.Martin@example.com ", demoPassword)
	s.Require().NoError(err)
	s.Equal("f1", user.ID)
	s.Require().NotNil(user.FreelancerDetails)
	s.Equal("Full Stack Developer", user.FreelancerDetails.Title)

	_, err = s.auth.Authenticate("sophie.martin@example.com", "wrong-password")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.auth.Authenticate("nobody@example.com", demoPassword)
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestRegister() {
	input := session.RegisterInput{
		Name:            "Nina Novak",
		Email:           "Nina@Example.com",
		Password:        "long-enough",
		ConfirmPassword: "long-enough",
		UserType:        models.UserTypeClient,
	}
	user, err := s.auth.Register(input)
	s.Require().NoError(err)
	s.NotEmpty(user.ID)
	s.Equal("nina@example.com", user.Email)
	s.Equal(constants.DefaultAvatarURL, user.Avatar)
	s.NotNil(user.ClientDetails)
	s.False(user.ProfileComplete)

	_, err = s.auth.Register(input)
	s.ErrorIs(err, ErrEmailTaken)

	authed, err := s.auth.Authenticate("nina@example.com", "long-enough")
	s.Require().NoError(err)
	s.Equal(user.ID, authed.ID)

	settings, err := s.settings.Notifications(user.ID)
	s.Require().NoError(err)
	s.True(settings.EmailMessages)
	s.False(settings.EmailMarketing)
}

func (s *ServiceSuite) TestRegisterAcceptsAnyPassword() {
	user, err := s.auth.Register(session.RegisterInput{
		Name:            "A",
		Email:           "a@x.com",
		Password:        "pw",
		ConfirmPassword: "pw",
		UserType:        models.UserTypeFreelancer,
	})
	s.Require().NoError(err)
	s.Equal("A", user.Name)
	s.Equal(models.UserTypeFreelancer, user.UserType)

	authed, err := s.auth.Authenticate("a@x.com", "pw")
	s.Require().NoError(err)
	s.Equal(user.ID, authed.ID)
}

func (s *ServiceSuite) TestRegisterRejectsBadInput() {
	base := session.RegisterInput{
		Name:            "Nina Novak",
		Email:           "nina@example.com",
		Password:        "long-enough",
		ConfirmPassword: "long-enough",
		UserType:        models.UserTypeFreelancer,
	}

	mismatch := base
	mismatch.ConfirmPassword = "different"
	_, err := s.auth.Register(mismatch)
	s.ErrorIs(err, ErrPasswordMismatch)

	noName := base
	noName.Name = "   "
	_, err = s.auth.Register(noName)
	s.ErrorIs(err, ErrInvalidInput)

	badType := base
	badType.UserType = "admin"
	_, err = s.auth.Register(badType)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ServiceSuite) TestGetUser() {
	user, err := s.auth.GetUser("c1")
	s.Require().NoError(err)
	s.Equal("David Müller", user.Name)

	_, err = s.auth.GetUser("missing")
	s.ErrorIs(err, ErrUserNotFound)
}
