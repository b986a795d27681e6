package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studytrack/studytrack-api/model"
	applog "github.com/studytrack/studytrack-api/utils/logger"
	"gorm.io/gorm"
)

const (
	DefaultDownloadExpiration = 15 * time.Minute
	MaxDownloadExpiration     = 7 * 24 * time.Hour
)

// ObjectStore is the part of the object storage client documents need
type ObjectStore interface {
	KeyFromURL(fileURL string) (string, bool)
	PresignedURL(key string, expiration time.Duration) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

// DocumentService resolves download links and removes stored files of documents
type DocumentService struct {
	db    *gorm.DB
	store ObjectStore
	log   *applog.Logger
}

// NewDocumentService creates a new document service. store may be nil when object storage is not configured.
func NewDocumentService(db *gorm.DB, store ObjectStore, lg *applog.Logger) *DocumentService {
	return &DocumentService{db: db, store: store, log: lg}
}

// DownloadLink is the URL a client should fetch a document from
type DownloadLink struct {
	DocumentID uint       `json:"document_id"`
	URL        string     `json:"url"`
	Presigned  bool       `json:"presigned"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// DownloadURL returns a presigned URL when the file lives in the configured bucket,
// otherwise the stored file_url unchanged.
func (s *DocumentService) DownloadURL(ctx context.Context, documentID uint, expiration time.Duration) (*DownloadLink, error) {
	var doc model.Document
	if err := s.db.WithContext(ctx).First(&doc, documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load document %d: %w", documentID, err)
	}

	link := &DownloadLink{DocumentID: doc.ID, URL: doc.FileURL}
	if s.store == nil {
		return link, nil
	}

	key, ok := s.store.KeyFromURL(doc.FileURL)
	if !ok {
		return link, nil
	}

	if expiration <= 0 {
		expiration = DefaultDownloadExpiration
	}
	if expiration > MaxDownloadExpiration {
		expiration = MaxDownloadExpiration
	}

	url, err := s.store.PresignedURL(key, expiration)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(expiration)
	link.URL = url
	link.Presigned = true
	link.ExpiresAt = &expiresAt
	s.log.Debug("Issued presigned download URL", "document_id", doc.ID, "expires_in", expiration.String())
	return link, nil
}

// Delete removes the document row, then its object from storage on a best-effort basis.
// Notes derived from the document keep existing with a null document_id.
func (s *DocumentService) Delete(ctx context.Context, documentID uint) error {
	var doc model.Document
	if err := s.db.WithContext(ctx).First(&doc, documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load document %d: %w", documentID, err)
	}

	if err := s.db.WithContext(ctx).Delete(&model.Document{}, doc.ID).Error; err != nil {
		return fmt.Errorf("failed to delete document %d: %w", documentID, err)
	}

	if s.store == nil {
		return nil
	}
	if key, ok := s.store.KeyFromURL(doc.FileURL); ok {
		if err := s.store.DeleteFile(ctx, key); err != nil {
			s.log.Warn("Failed to delete stored file", "document_id", doc.ID, "key", key, "error", err)
		}
	}
	return nil
}
