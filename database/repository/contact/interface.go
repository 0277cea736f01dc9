package contactRepo

import (
	"context"
	"fmt"

	"cerberus/config"
	"cerberus/database"
	"cerberus/models"
)

// SubmissionRepository appends contact submissions. Rows are never updated or
// deleted.
type SubmissionRepository interface {
	// Create stores sub, filling in its generated ID and CreatedAt.
	Create(ctx context.Context, sub *models.ContactSubmission) error
}

// NewRepository builds the repository for the configured driver on top of
// the handles opened by database.InitDB.
func NewRepository(ctx context.Context) (SubmissionRepository, error) {
	switch config.AppConfig.DBDriver {
	case database.DriverSQLite, database.DriverPostgres:
		return NewSQLSubmissionRepo(ctx, database.SQLDB, config.AppConfig.DBDriver)
	case database.DriverMongo:
		return NewMongoSubmissionRepo(ctx, database.MongoClient.Database(config.AppConfig.MongoDatabase))
	}
	return nil, fmt.Errorf("contact repository: unsupported driver %q", config.AppConfig.DBDriver)
}
