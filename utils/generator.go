package utils

import (
	"crypto/rand"
	"fmt"
)

const codeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateID returns an externally-visible identifier like "SCH-7GK2QX0B".
// Collisions are left to the unique index on the owning table.
func GenerateID(prefix string) string {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	for i := range b {
		b[i] = letterBytes[int(b[i])%len(letterBytes)]
	}
	return prefix + "-" + string(b)
}
