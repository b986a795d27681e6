package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/studytrack/studytrack-api/config"
	"github.com/studytrack/studytrack-api/model"
	applog "github.com/studytrack/studytrack-api/utils/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GORMStore struct {
	db  *gorm.DB
	log *applog.Logger
}

// StartGORM opens the database selected by DB_DRIVER. Postgres is the production store;
// sqlite is meant for local development.
func StartGORM(env *config.EnvironmentVariable, lg *applog.Logger) (*GORMStore, error) {
	gormLogger := newGormLogger(env.IsProduction())

	var dialector gorm.Dialector
	switch env.DB_DRIVER {
	case "sqlite":
		dsn := env.DATABASE_URL
		if dsn == "" {
			dsn = "studytrack.db"
		}
		dialector = sqlite.Open(withForeignKeys(dsn))
	default:
		dialector = postgres.Open(postgresDSN(env))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
		PrepareStmt:    env.DB_DRIVER == "postgres",
	})
	if err != nil {
		lg.Error("Unable to connect to database", "driver", env.DB_DRIVER, "error", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	lg.Info("Connected to database", "driver", env.DB_DRIVER)

	return &GORMStore{db: db, log: lg}, nil
}

// OpenSQLite opens a sqlite database with foreign keys enforced. Tests use it with an in-memory DSN.
func OpenSQLite(dsn string, lg *applog.Logger) (*GORMStore, error) {
	db, err := gorm.Open(sqlite.Open(withForeignKeys(dsn)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// A shared in-memory database lives as long as one connection is open; a single
	// connection also serializes writers, which sqlite needs anyway.
	sqlDB.SetMaxOpenConns(1)

	return &GORMStore{db: db, log: lg}, nil
}

// Init runs the AutoMigrate to create/update tables
func (s *GORMStore) Init() error {
	s.log.Info("Running GORM AutoMigrate for all models")

	if err := s.db.AutoMigrate(model.All()...); err != nil {
		s.log.Error("Error running AutoMigrate", "error", err)
		return err
	}

	s.log.Info("GORM AutoMigrate completed")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	s.log.Info("Closing database connection")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in handlers and services
func (s *GORMStore) GetDB() *gorm.DB {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func postgresDSN(env *config.EnvironmentVariable) string {
	if env.DATABASE_URL != "" {
		return env.DATABASE_URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		env.DB_HOST,
		env.DB_USER_NAME,
		env.DB_PASSWORD,
		env.DB_NAME,
		env.DB_PORT,
		env.DB_SSL_MODE,
	)
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func newGormLogger(production bool) logger.Interface {
	level := logger.Warn
	if production {
		level = logger.Error
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
