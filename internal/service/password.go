package service

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the work factor the rest of the stack was
// provisioned for; it is deliberately above bcrypt's library default.
const DefaultBcryptCost = 12

// HashPassword produces a salted one-way hash of a plaintext password.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a stored hash using the
// bcrypt comparison routine, never raw string equality.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
