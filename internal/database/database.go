package database

import (
	"fmt"
	"time"

	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a connection for the given driver and creates the schema from GORM models.
func Initialize(driver, dsn string, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
		// one connection: an in-memory database lives and dies with its connection
		opts.MaxOpenConns = 1
		opts.MaxIdleConns = 1
		opts.ConnMaxLifetime = 0
		opts.ConnMaxIdleTime = 0
	default:
		return nil, apperrors.ErrUnknownDBDriver
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		if err := createScopeIndexes(db); err != nil {
			return nil, fmt.Errorf("create indexes: %w", err)
		}
	}

	return db, nil
}

// assignmentScopeIndex keeps (event, ceremony, member) unique. A plain unique
// index treats NULL ceremony ids as distinct, so whole-event rows are folded
// onto the nil UUID.
const assignmentScopeIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_team_assignments_scope
ON team_assignments (event_id, COALESCE(ceremony_id, '00000000-0000-0000-0000-000000000000'), team_member_id)`

func createScopeIndexes(db *gorm.DB) error {
	return db.Exec(assignmentScopeIndex).Error
}
