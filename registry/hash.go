package registry

import "github.com/minio/blake2b-simd"

// hashSize is the content-hash digest length (spec §4.5, I1): wide enough
// to make collisions a non-concern within a single crate's register
// tables, narrow enough to index cheaply.
const hashSize = 16

// contentHash returns the hashSize-byte BLAKE2b digest of payload. Every
// register table's dedupe key is this hash over the row's canonical JSON
// payload, never the payload bytes themselves.
func contentHash(payload []byte) ([]byte, error) {
	h, err := blake2b.New(&blake2b.Config{Size: hashSize})
	if err != nil {
		return nil, err
	}
	h.Write(payload)
	return h.Sum(nil), nil
}
