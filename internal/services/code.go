package services

import "math/rand"

const (
	codeLength   = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateCode returns a 6-character session code drawn uniformly from
// A-Z and 0-9. Uniqueness is the session service's job, not the
// generator's.
func GenerateCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
