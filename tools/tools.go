package tools

import (
	"crypto/sha512"
	"encoding/hex"
)

func EncryptTextSHA512(text string) string {
	sum := sha512.Sum512([]byte(text))
	return hex.EncodeToString(sum[:])
}

// HashPassword applies the scheme used on signup and login:
// sha512(email + ":" + sha512(password)).
func HashPassword(email, password string) string {
	encoded := EncryptTextSHA512(password)
	return EncryptTextSHA512(email + ":" + encoded)
}
