package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/logger"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/session"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = session.ErrInvalidCredentials
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService verifies credentials and creates accounts. It is the
// Authenticator behind every session store.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate verifies the email/password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(email, password string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	out := dto.ToUserDTO(*user)
	return &out, nil
}

// Register creates an account with an empty profile of the requested type.
func (s *AuthService) Register(input session.RegisterInput) (*dto.UserDTO, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)

	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	id := utils.NewID()
	settings := models.DefaultNotificationSettings(id)
	user := &models.User{
		ID:                   id,
		Name:                 input.Name,
		Email:                input.Email,
		Avatar:               constants.DefaultAvatarURL,
		UserType:             input.UserType,
		PasswordHash:         string(hashedPassword),
		NotificationSettings: &settings,
	}
	if user.IsFreelancer() {
		user.FreelancerProfile = &models.FreelancerProfile{
			UserID:       id,
			Skills:       []string{},
			Availability: models.AvailabilityAvailable,
		}
	} else {
		user.ClientProfile = &models.ClientProfile{UserID: id}
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.L().Error("Failed to create user", zap.Error(err))
		return nil, ErrFailedToCreateUser
	}

	out := dto.ToUserDTO(*user)
	return &out, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
