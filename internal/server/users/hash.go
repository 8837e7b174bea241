package users

import (
	"errors"
	"fmt"

	"github.com/epavlovs/auth-service/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword derives a salted bcrypt hash. The returned string encodes the
// salt and cost alongside the digest, so verification needs no separately
// stored salt state.
func hashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrHashingFailure, err)
	}
	return string(h), nil
}

// verifyPassword checks a candidate password against a stored hash in
// constant time. A wrong password yields (false, nil); a malformed stored
// hash yields common.ErrHashingFailure, which callers must not surface as
// anything other than a failed match.
func verifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", common.ErrHashingFailure, err)
}
