// Package hasher provides the content hashes used to fingerprint
// generated artifacts (manifest entries, staleness checks, verbose
// diagnostics).
package hasher

import (
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// HexLen is the default hash length recorded in manifests: 16 hex
// chars (the full 64 bits), collision-safe for any realistic asset
// tree.
const HexLen = 16

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to hexLen characters (0 or out-of-range means full
// length).
func ContentHash(data []byte, hexLen int) string {
	return truncate(hex.EncodeToString(uint64ToBytes(xxhash.Sum64(data))), hexLen)
}

// ContentHashReader computes xxHash64 from a reader, streaming. Used
// to fingerprint artifacts already on disk without loading them
// whole.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return truncate(hex.EncodeToString(uint64ToBytes(h.Sum64())), hexLen), nil
}

func truncate(full string, hexLen int) string {
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (56 - 8*i))
	}
	return b
}
