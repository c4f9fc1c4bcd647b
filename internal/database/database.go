package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bonehealth-backend/internal/config"
	"bonehealth-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 3 * time.Second
)

// Database wraps the gorm handle used by the persistent repositories.
type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

// Connect opens the database described by cfg.
func Connect(cfg config.DatabaseConfig) (*Database, error) {
	return Open(cfg.DSN(), cfg)
}

// Open connects with an explicit DSN, sizes the pool from cfg and migrates
// the translation schema.
func Open(dsn string, cfg config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	configurePool(sqlDB, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).WithField("host", cfg.Host).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		logrus.WithError(err).Error("Failed to migrate translation schema")
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"host":           cfg.Host,
		"database":       cfg.DBName,
		"max_open_conns": cfg.MaxOpenConns,
	}).Info("Database ready")

	return &Database{DB: db, config: cfg}, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
		// Unique violations surface as gorm.ErrDuplicatedKey.
		TranslateError: true,
		PrepareStmt:    true,
	}
}

func configurePool(sqlDB *sql.DB, cfg config.DatabaseConfig) {
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

// HealthCheck pings the pool, bounded by pingTimeout when ctx has no deadline.
func (d *Database) HealthCheck(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pingTimeout)
		defer cancel()
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// migrate creates the tables. Translation rows reference their key with
// ON DELETE CASCADE and are unique per (key_id, language_code).
func migrate(db *gorm.DB) error {
	start := time.Now()
	err := db.AutoMigrate(
		&models.TranslationKey{},
		&models.Translation{},
		&models.TranslationProject{},
		&models.RiskAssessment{},
	)
	if err != nil {
		return err
	}

	logrus.WithField("duration", time.Since(start).String()).Info("Schema migration completed")
	return nil
}
