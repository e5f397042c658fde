package processor

import "encoding/json"

// CanonicalJSON serializes p the same way every time: Go's encoding/json
// already emits struct fields in declaration order and this package never
// marshals through a map, so two equal ProcessedFormatString values always
// produce byte-identical output (spec §3.3, §4.2 determinism contract;
// P2). This is the payload the registry hashes (spec §4.5, I1).
func (p ProcessedFormatString) CanonicalJSON() ([]byte, error) {
	return json.Marshal(p)
}
