package utils

import "golang.org/x/crypto/bcrypt"

// Bcrypt helpers for the admin credential check (ADMIN_PASSWORD_HASH).

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
