package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewRef returns a reference string of the form PREFIX-hex, e.g.
// "BKG-9f2c41d8a0b3e617". The hex tail comes from 8 bytes of
// cryptographically secure random data, which is plenty for the
// in-memory stores here; collisions are not re-checked.
func NewRef(prefix string) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// there is no sensible recovery for ID generation.
		panic(err)
	}
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(b))
}
