package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashJSON fingerprints a request payload for idempotency checks. Struct
// fields marshal in declaration order and map keys sorted, so equal payloads
// hash equally. A value that cannot be marshalled hashes as empty input.
func HashJSON(jsonData any) string {
	data, err := json.Marshal(jsonData)
	if err != nil {
		data = nil
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
