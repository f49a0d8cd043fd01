// Package digest computes the xxHash64 checksums envelope frames use to
// detect corruption.
package digest

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// New returns a streaming xxHash64 digest, for callers checksumming a
// payload incrementally instead of all at once.
func New() *xxhash.Digest {
	return xxhash.New()
}
