package database

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/freelance-marketplace-api/internal/logger"
)

type compositeIndex struct {
	table   string
	name    string
	columns []string
}

// Composite indexes backing the hot lookups; single-column ones come from
// the model tags.
var compositeIndexes = []compositeIndex{
	// One active proposal per freelancer per job is checked on this pair
	{"proposals", "idx_proposals_job_freelancer", []string{"job_id", "freelancer_id"}},

	// Message threads between two users, read in time order
	{"messages", "idx_messages_pair_created", []string{"sender_id", "receiver_id", "created_at"}},

	{"milestones", "idx_milestones_project_position", []string{"project_id", "position"}},
	{"jobs", "idx_jobs_client_status", []string{"client_id", "status"}},
}

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	for _, idx := range compositeIndexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			logger.L().Debug("Index already exists, skipping", zap.String("index", idx.name))
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, strings.Join(idx.columns, ", "))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		logger.L().Info("Created index",
			zap.String("index", idx.name),
			zap.String("table", idx.table),
			zap.Strings("columns", idx.columns),
		)
	}

	return nil
}
