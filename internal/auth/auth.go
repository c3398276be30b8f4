// Package auth is the opaque credential check the booking workflow consumes.
// The engine never sees plaintext passwords after registration.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives the stored credential from a plaintext password.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// Verify reports whether the password matches the stored hash.
func Verify(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
