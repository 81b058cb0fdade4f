package utils

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// hexIDPattern matches the 24-character hexadecimal identifiers used for
// every stored entity. Any identifier failing this shape is rejected before
// the store is touched.
var hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewID returns a new opaque 24-character hex identifier generated from
// 12 bytes of cryptographically secure random data.
func NewID() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IsHexID reports whether s is a well-formed 24-character hex identifier.
func IsHexID(s string) bool {
	return hexIDPattern.MatchString(s)
}
