package helpers

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost bisa diturunkan di test.
var BcryptCost = bcrypt.DefaultCost

// MaxPasswordBytes: bcrypt menolak input > 72 byte (bukan karakter).
const MaxPasswordBytes = 72

func PasswordTooLong(password string) bool {
	return len(password) > MaxPasswordBytes
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// SplitFullName: token pertama = first name, sisanya = last name (kosong kalau tidak ada).
func SplitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
