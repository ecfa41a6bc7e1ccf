// Package gcs implements object.BlobStore on Google Cloud Storage using a
// base64-encoded service-account JSON blob for credentials.
package gcs

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"stonkie-backend/internal/shared/storage/object"
)

// ErrNoCredentials is returned by New when no credential blob is configured.
var ErrNoCredentials = errors.New("gcs credentials not configured")

// Store implements BlobStore on a single GCS bucket.
type Store struct {
	client *storage.Client
	bucket *storage.BucketHandle
	name   string
}

// New builds a GCS client from a base64 service-account JSON blob.
func New(ctx context.Context, bucket, credentialsB64 string) (*Store, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}
	if strings.TrimSpace(credentialsB64) == "" {
		return nil, ErrNoCredentials
	}

	creds, err := decodeCredentials(ctx, credentialsB64)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	return &Store{
		client: client,
		bucket: client.Bucket(bucket),
		name:   bucket,
	}, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Exists fetches object attributes to test for presence.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("gcs attrs bucket=%s key=%s: %w", s.name, key, err)
	}
	return true, nil
}

// Read downloads the object stored at key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	r, err := s.bucket.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, object.ErrNotFound
		}
		return nil, fmt.Errorf("gcs open bucket=%s key=%s: %w", s.name, key, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gcs read bucket=%s key=%s: %w", s.name, key, err)
	}
	return data, nil
}

// Write uploads r to key. The object is committed when the writer closes.
func (s *Store) Write(ctx context.Context, key string, contentType string, r io.Reader) (int64, error) {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	n, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()
		return 0, fmt.Errorf("gcs write bucket=%s key=%s: %w", s.name, key, err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("gcs commit bucket=%s key=%s: %w", s.name, key, err)
	}
	return n, nil
}

func decodeCredentials(ctx context.Context, raw string) (*google.Credentials, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("decode gcs credentials: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("decode gcs credentials: not a JSON document")
	}
	creds, err := google.CredentialsFromJSON(ctx, data, storage.ScopeReadWrite)
	if err != nil {
		return nil, fmt.Errorf("parse gcs credentials: %w", err)
	}
	return creds, nil
}

var _ object.BlobStore = (*Store)(nil)
