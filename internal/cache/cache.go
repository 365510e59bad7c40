package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/ppiankov/sentex/internal/extract"
)

// Cache stores opaque values under string keys
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for parsing text with opts. Parser options are
// part of the key so toggling them never serves stale sentences.
func Key(text string, opts extract.Options) string {
	h := sha256.New()
	h.Write([]byte{flag(opts.FlushTrailing), flag(opts.KeepCodeHeadings)})
	h.Write([]byte(text))
	return "sentex:v1:" + hex.EncodeToString(h.Sum(nil))
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
