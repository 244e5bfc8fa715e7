package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// MilestonesInOrder preloads milestones by their position in the plan
func MilestonesInOrder(db *gorm.DB) *gorm.DB {
	return db.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// WithProfiles preloads the user-type specific profile records
func WithProfiles(db *gorm.DB) *gorm.DB {
	return db.Preload("FreelancerProfile").
		Preload("FreelancerProfile.Portfolio").
		Preload("ClientProfile")
}
