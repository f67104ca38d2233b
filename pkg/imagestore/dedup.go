package imagestore

import (
	"crypto/md5"
	"encoding/hex"
	"sync"
)

// HashContent returns the hex-encoded MD5 digest of body. MD5 is used for
// identity, not integrity: the digest only has to tell byte-identical
// downloads apart.
func HashContent(body []byte) string {
	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}

// DedupRegistry tracks the content hashes seen during the lifetime of the
// process. It is never persisted or pruned.
type DedupRegistry struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewDedupRegistry returns an empty registry.
func NewDedupRegistry() *DedupRegistry {
	return &DedupRegistry{seen: make(map[string]struct{})}
}

// CheckAndRecord reports whether sum is new and records it. The lookup and
// the insert happen under one lock, so two identical payloads checked
// concurrently cannot both be reported as new.
func (r *DedupRegistry) CheckAndRecord(sum string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[sum]; ok {
		return false
	}
	r.seen[sum] = struct{}{}
	return true
}

// Len returns the number of distinct hashes recorded so far.
func (r *DedupRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
