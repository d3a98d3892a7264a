package encode

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances offline brute-force resistance against interactive
// login latency.
const bcryptCost = 12

var ErrHashingFailed = errors.New("password hashing failed")

// HashPassword produces a salted digest; the salt is random per call, so two
// digests of the same plaintext differ.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(digest), nil
}

// VerifyPassword recomputes with the salt embedded in digest and compares in
// constant time. A mismatch is (false, nil); only internal faults such as a
// malformed digest return an error.
func VerifyPassword(plain, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, errors.Join(ErrHashingFailed, err)
}
