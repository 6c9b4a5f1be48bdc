// Package password wraps bcrypt so the rest of the codebase never touches
// plaintext comparison primitives directly.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted one-way hash from a plaintext password. Two calls
// with the same input produce different outputs (random salt), but both
// verify against the original password.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored hash. bcrypt compares the
// full digest regardless of where a mismatch occurs, so the check does not
// leak match position through timing.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
