package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a TTL byte cache. The robots.txt checker uses it so batch
// runs fetch each host's policy once per TTL window. Page content is
// deliberately never cached: every analysis is a fresh evaluation.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from an arbitrary string
func Key(s string) string {
	hash := sha256.Sum256([]byte(s))
	return "credlens:v1:" + hex.EncodeToString(hash[:])
}
