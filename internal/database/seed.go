package database

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/catalog"
	"github.com/yukikurage/freelance-marketplace-api/internal/logger"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

// Seed loads the fixed catalog. Every seeded account gets demoPassword.
// It is a no-op when users already exist.
func Seed(db *gorm.DB, demoPassword string) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect users: %w", err)
	}
	if count > 0 {
		logger.L().Info("Catalog already present, skipping seed", zap.Int64("users", count))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	users := catalog.Users()
	for i := range users {
		users[i].PasswordHash = string(hash)
		settings := models.DefaultNotificationSettings(users[i].ID)
		users[i].NotificationSettings = &settings
	}
	jobs := catalog.Jobs()
	proposals := catalog.Proposals()
	messages := catalog.Messages()
	projects := catalog.Projects()

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("users: %w", err)
		}
		if err := tx.Create(&jobs).Error; err != nil {
			return fmt.Errorf("jobs: %w", err)
		}
		if err := tx.Create(&proposals).Error; err != nil {
			return fmt.Errorf("proposals: %w", err)
		}
		if err := tx.Create(&messages).Error; err != nil {
			return fmt.Errorf("messages: %w", err)
		}
		if err := tx.Create(&projects).Error; err != nil {
			return fmt.Errorf("projects: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	logger.L().Info("Catalog seeded",
		zap.Int("users", len(users)),
		zap.Int("jobs", len(jobs)),
		zap.Int("proposals", len(proposals)),
	)
	return nil
}
