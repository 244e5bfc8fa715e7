package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user; gorm inserts the attached profile rows in the
// same transaction
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(database.WithProfiles).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(database.WithProfiles).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByIDs(ids []string) (map[string]models.User, error) {
	out := make(map[string]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var users []models.User
	if err := r.db.Scopes(database.WithProfiles).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func (r *GormUserRepository) ListByType(userType models.UserType) ([]models.User, error) {
	var users []models.User
	if err := r.db.Scopes(database.WithProfiles).
		Where("user_type = ?", userType).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update saves the user's own columns without touching associations
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Omit(clause.Associations).Save(user).Error
}

func (r *GormUserRepository) SaveFreelancerProfile(profile *models.FreelancerProfile) error {
	return r.db.Omit("Portfolio").Save(profile).Error
}

func (r *GormUserRepository) SaveClientProfile(profile *models.ClientProfile) error {
	return r.db.Save(profile).Error
}

func (r *GormUserRepository) FindNotificationSettings(userID string) (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	if err := r.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *GormUserRepository) SaveNotificationSettings(settings *models.NotificationSettings) error {
	return r.db.Save(settings).Error
}
