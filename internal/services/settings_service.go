package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

var (
	ErrWrongPassword     = errors.New("current password is incorrect")
	ErrProfileIncomplete = errors.New("profile is missing required fields")
	ErrNoAccountChanges  = errors.New("nothing to update")
)

// SettingsService updates profiles, account credentials and notification
// preferences
type SettingsService struct {
	userRepo repository.UserRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(userRepo repository.UserRepository) *SettingsService {
	return &SettingsService{userRepo: userRepo}
}

// UpdateProfileInput holds the profile form. Nil fields are left unchanged;
// fields that do not apply to the user's type are ignored.
type UpdateProfileInput struct {
	Name        *string  `validate:"omitempty,min=1,max=255"`
	Avatar      *string  `validate:"omitempty,url"`
	Description *string  `validate:"omitempty,max=5000"`
	Location    *string  `validate:"omitempty,max=255"`
	Title       *string  `validate:"omitempty,max=255"`
	Skills      []string `validate:"omitempty,dive,required"`
	HourlyRate  *float64 `validate:"omitempty,gte=0"`
	Company     *string  `validate:"omitempty,max=255"`
	Industry    *string  `validate:"omitempty,max=255"`
	Website     *string  `validate:"omitempty,max=512"`
}

// SplitSkills turns the comma separated skills field into a clean list.
func SplitSkills(csv string) []string {
	skills := []string{}
	for _, s := range strings.Split(csv, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func (s *SettingsService) loadUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// UpdateProfile applies the profile form and returns the refreshed user.
func (s *SettingsService) UpdateProfile(userID string, input UpdateProfileInput) (*dto.UserDTO, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil || input.Avatar != nil {
		setIf(&user.Name, input.Name)
		setIf(&user.Avatar, input.Avatar)
		if err := s.userRepo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if user.IsFreelancer() {
		profile := user.FreelancerProfile
		if profile == nil {
			profile = &models.FreelancerProfile{UserID: user.ID, Availability: models.AvailabilityAvailable}
			user.FreelancerProfile = profile
		}
		setIf(&profile.Title, input.Title)
		setIf(&profile.Description, input.Description)
		setIf(&profile.Location, input.Location)
		if input.Skills != nil {
			profile.Skills = input.Skills
		}
		if input.HourlyRate != nil {
			profile.HourlyRate = *input.HourlyRate
		}
		if err := s.userRepo.SaveFreelancerProfile(profile); err != nil {
			return nil, fmt.Errorf("failed to save profile: %w", err)
		}
	} else {
		profile := user.ClientProfile
		if profile == nil {
			profile = &models.ClientProfile{UserID: user.ID}
			user.ClientProfile = profile
		}
		setIf(&profile.Company, input.Company)
		setIf(&profile.Industry, input.Industry)
		setIf(&profile.Description, input.Description)
		setIf(&profile.Location, input.Location)
		if input.Website != nil {
			website := strings.TrimSpace(*input.Website)
			if website == "" {
				profile.Website = nil
			} else {
				profile.Website = &website
			}
		}
		if err := s.userRepo.SaveClientProfile(profile); err != nil {
			return nil, fmt.Errorf("failed to save profile: %w", err)
		}
	}

	out := dto.ToUserDTO(*user)
	return &out, nil
}

// SetupProfile is the first-run profile form. Freelancers must give a title
// and a rate; clients a company.
func (s *SettingsService) SetupProfile(userID string, input UpdateProfileInput) (*dto.UserDTO, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	blank := func(v *string) bool { return v == nil || strings.TrimSpace(*v) == "" }
	if user.IsFreelancer() && (blank(input.Title) || input.HourlyRate == nil) {
		return nil, ErrProfileIncomplete
	}
	if user.IsClient() && blank(input.Company) {
		return nil, ErrProfileIncomplete
	}
	return s.UpdateProfile(userID, input)
}

// UpdateAccountInput holds the account form. A password change needs the
// current password and a matching confirmation.
type UpdateAccountInput struct {
	Email           string `validate:"omitempty,email"`
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func (s *SettingsService) UpdateAccount(userID string, input UpdateAccountInput) (*dto.UserDTO, error) {
	input.Email = normalizeEmail(input.Email)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if input.Email == "" && input.NewPassword == "" {
		return nil, ErrNoAccountChanges
	}
	if input.NewPassword != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		user.Email = input.Email
	}

	if input.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
			return nil, ErrWrongPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	out := dto.ToUserDTO(*user)
	return &out, nil
}

func (s *SettingsService) Notifications(userID string) (*models.NotificationSettings, error) {
	settings, err := s.userRepo.FindNotificationSettings(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := models.DefaultNotificationSettings(userID)
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) UpdateNotifications(userID string, settings models.NotificationSettings) (*models.NotificationSettings, error) {
	settings.UserID = userID
	if err := s.userRepo.SaveNotificationSettings(&settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &settings, nil
}
