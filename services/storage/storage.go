package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/studytrack/studytrack-api/config"
)

// Client talks to an S3-compatible bucket holding uploaded documents
type Client struct {
	s3Client *s3.S3
	bucket   string
	endpoint string
	cdnURL   string
}

// Config holds configuration for the storage client
type Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	CDNURL    string
}

// ConfigFromEnv builds a Config from the environment. ok is false when no bucket is configured.
func ConfigFromEnv(env *config.EnvironmentVariable) (cfg Config, ok bool) {
	cfg = Config{
		AccessKey: env.STORAGE_ACCESS_KEY,
		SecretKey: env.STORAGE_SECRET_KEY,
		Bucket:    env.STORAGE_BUCKET,
		Region:    env.STORAGE_REGION,
		Endpoint:  env.STORAGE_ENDPOINT,
		CDNURL:    env.STORAGE_CDN_URL,
	}
	if cfg.Bucket == "" || cfg.Region == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return cfg, false
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = fmt.Sprintf("s3.%s.amazonaws.com", cfg.Region)
	}
	return cfg, true
}

// NewClient creates a new storage client
func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage session: %w", err)
	}

	return &Client{
		s3Client: s3.New(sess),
		bucket:   cfg.Bucket,
		endpoint: strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://"),
		cdnURL:   strings.TrimSuffix(cfg.CDNURL, "/"),
	}, nil
}

// KeyFromURL extracts the object key from a URL that points into this bucket
func (c *Client) KeyFromURL(fileURL string) (string, bool) {
	prefixes := []string{
		fmt.Sprintf("https://%s.%s/", c.bucket, c.endpoint),
		fmt.Sprintf("https://%s/%s/", c.endpoint, c.bucket),
	}
	if c.cdnURL != "" {
		prefixes = append(prefixes, c.cdnURL+"/")
	}

	for _, prefix := range prefixes {
		if key, found := strings.CutPrefix(fileURL, prefix); found && key != "" {
			if i := strings.IndexAny(key, "?#"); i >= 0 {
				key = key[:i]
			}
			return key, key != ""
		}
	}
	return "", false
}

// PresignedURL generates a time-limited GET URL for a key
func (c *Client) PresignedURL(key string, expiration time.Duration) (string, error) {
	req, _ := c.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(expiration)
	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}
	return url, nil
}

// DeleteFile deletes an object from the bucket
func (c *Client) DeleteFile(ctx context.Context, key string) error {
	_, err := c.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
