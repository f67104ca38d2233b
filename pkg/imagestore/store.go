package imagestore

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
)

// Store persists image bodies as whole blobs with collision-safe names.
type Store struct {
	bucket *blob.Bucket
	dedup  *DedupRegistry
}

// New creates a Store over bucket. A nil dedup registry is replaced with a
// fresh one.
func New(bucket *blob.Bucket, dedup *DedupRegistry) *Store {
	if dedup == nil {
		dedup = NewDedupRegistry()
	}
	return &Store{bucket: bucket, dedup: dedup}
}

// Dedup returns the registry shared by this store.
func (s *Store) Dedup() *DedupRegistry {
	return s.dedup
}

// Exists reports whether an object with the given name is already present.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	return s.bucket.Exists(ctx, name)
}

// Save writes body under a name derived from rawURL and contentType,
// never overwriting an existing object. It returns the final object name.
func (s *Store) Save(ctx context.Context, rawURL, contentType string, body []byte) (string, error) {
	name, err := ResolveName(rawURL, contentType, func(candidate string) (bool, error) {
		return s.bucket.Exists(ctx, candidate)
	})
	if err != nil {
		return "", fmt.Errorf("resolve name for %s: %w", rawURL, err)
	}

	w, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("open writer for %s: %w", name, err)
	}
	if _, err := w.Write(body); err != nil {
		w.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return name, nil
}
