// Package cache memoizes candidate outcome lookups.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ppiankov/triage/internal/model"
)

// Cache defines the interface for caching candidate outcome ids
type Cache interface {
	Get(key string) ([]model.OutcomeID, bool)
	Set(key string, value []model.OutcomeID, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CandidateKey generates a cache key from a store length and a query key.
// Absent entries are left out, so an omitted answer and an explicit
// Absent produce the same cache key.
func CandidateKey(storeLen int, key model.KeyReader) string {
	var parts []string
	for id, a := range key.Entries() {
		if v, ok := a.Value(); ok {
			parts = append(parts, fmt.Sprintf("%d=%q", id, v))
		}
	}
	slices.Sort(parts)

	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return fmt.Sprintf("triage:v1:%d:%s", storeLen, hex.EncodeToString(hash[:]))
}
