package database

import (
	"context"

	"gorm.io/gorm"
)

// Storage defines the interface that all database implementations must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck(ctx context.Context) error

	// GetDB returns the handle injected into handlers and services
	GetDB() *gorm.DB
}

var _ Storage = (*GORMStore)(nil)
