package document_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-api/handlers/document"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/services"
	"github.com/studytrack/studytrack-api/testutil"
	applog "github.com/studytrack/studytrack-api/utils/logger"
)

type recordingStore struct {
	expirations []time.Duration
}

func (s *recordingStore) KeyFromURL(fileURL string) (string, bool) {
	return strings.CutPrefix(fileURL, "https://bucket.example/")
}

func (s *recordingStore) PresignedURL(key string, expiration time.Duration) (string, error) {
	s.expirations = append(s.expirations, expiration)
	return "https://signed.example/" + key, nil
}

func (s *recordingStore) DeleteFile(context.Context, string) error { return nil }

func TestGetDownloadURLExpiration(t *testing.T) {
	db := testutil.NewDB(t)
	store := &recordingStore{}
	handler := document.NewDocumentHandler(db, services.NewDocumentService(db, store, applog.NewNop()))

	app := fiber.New()
	app.Get("/documents/:id/download", handler.GetDownloadURL)

	user := testutil.CreateUser(t, db, "download@example.com")
	doc := model.Document{UserID: user.ID, Title: "Slides", Type: model.DocumentTypePDF, FileURL: "https://bucket.example/users/1/slides.pdf"}
	require.NoError(t, db.Create(&doc).Error)

	tests := []struct {
		query      string
		wantStatus int
		wantExpiry time.Duration
	}{
		{"", http.StatusOK, services.DefaultDownloadExpiration},
		{"?expiration=60", http.StatusOK, time.Hour},
		{"?expiration=999999999999999", http.StatusOK, services.MaxDownloadExpiration},
		{"?expiration=-5", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		store.expirations = nil
		before := time.Now()

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/documents/%d/download%s", doc.ID, tt.query), nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		var body struct {
			Data services.DownloadLink `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		require.Equal(t, tt.wantStatus, resp.StatusCode, tt.query)
		if tt.wantStatus != http.StatusOK {
			assert.Empty(t, store.expirations, tt.query)
			continue
		}

		require.Equal(t, []time.Duration{tt.wantExpiry}, store.expirations, tt.query)
		require.NotNil(t, body.Data.ExpiresAt, tt.query)
		assert.WithinDuration(t, before.Add(tt.wantExpiry), *body.Data.ExpiresAt, time.Minute, tt.query)
	}
}
