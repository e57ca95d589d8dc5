// Package cache stores solved puzzles and rendered artifacts between runs.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry below a directory (CLI default)
//   - [RedisCache]: shared cache for several server instances
//   - [MongoCache]: document store with a TTL index
//   - [NullCache]: stores nothing, used with --no-cache
//
// # Keys
//
// A [Keyer] derives keys from content hashes, so identical tile input always
// maps to the same solution entry no matter where it came from:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.SolutionKey(cache.Hash(input))
//
// Use [NewScopedKeyer] to give a tenant or environment its own key space.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is reported
	// as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Entry lifetimes.
const (
	TTLSolution = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer derives cache keys.
type Keyer interface {
	// SolutionKey is the key of the solution for input with the given hash.
	SolutionKey(inputHash string) string
	// ArtifactKey is the key of one rendered artifact of a solution.
	ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render settings that change artifact bytes.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Scale    int    `json:"scale,omitempty"`
	Detailed bool   `json:"detailed,omitempty"`
}

// DefaultKeyer produces keys of the form "<kind>:<hash>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SolutionKey returns "solution:<inputHash>".
func (DefaultKeyer) SolutionKey(inputHash string) string {
	return "solution:" + inputHash
}

// ArtifactKey hashes the solution hash together with opts.
func (DefaultKeyer) ArtifactKey(solutionHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", solutionHash, opts)
}
