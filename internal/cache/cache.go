// Package cache stores serialized analysis results so batch runs over
// overlapping filing sets skip recomputation. The engine stays a pure
// function; caching happens entirely in the pipeline layer.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache defines the interface for result caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ResultKey derives a cache key from everything that determines an
// AnalysisResult: the section text and the tunable parameters. Two calls with
// identical inputs always map to the same key because the engine is
// deterministic.
func ResultKey(text, sectionName, sectionKind string, minConfidence float64, maxSegments int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%.6f\x00%d", text, sectionName, sectionKind, minConfidence, maxSegments)
	return "flsscan:v1:" + hex.EncodeToString(h.Sum(nil))
}
