package helpers

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor applied to every stored credential.
const HashCost = 10

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash with a plain password.
// A wrong password yields bcrypt.ErrMismatchedHashAndPassword; any other
// error means the comparison itself failed.
func VerifyPassword(hash string, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
