package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Cache stores serialized analysis responses.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// Key derives a cache key from a namespace and the JSON encoding of parts.
// Equal inputs always produce the same key.
func Key(namespace string, parts ...any) (string, error) {
	digest := xxhash.New()
	enc := json.NewEncoder(digest)
	for i, part := range parts {
		if err := enc.Encode(part); err != nil {
			return "", fmt.Errorf("failed to encode key part %d: %w", i, err)
		}
	}
	return namespace + ":" + strconv.FormatUint(digest.Sum64(), 16), nil
}
