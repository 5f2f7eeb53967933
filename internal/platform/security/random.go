package security

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	tokenMin = 10000
	tokenMax = 99999 // exclusive
)

// VerificationToken returns a uniformly random 5-digit code in [10000, 99999).
func VerificationToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(tokenMax-tokenMin))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+tokenMin, 10), nil
}
