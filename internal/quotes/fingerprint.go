package quotes

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// cartFingerprint derives a stable cache key component from the cart request.
// Line order is part of the fingerprint; permuted carts price identically but
// cache separately, which only costs a recomputation.
func cartFingerprint(input CartInput) (string, error) {
	payload, err := json.Marshal(input.Lines)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
