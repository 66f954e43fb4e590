package utils

import "math/rand"

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken builds the short alphanumeric codes used for MFA
// challenges and password reset links.
func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		token[i] = tokenCharset[rand.Intn(len(tokenCharset))]
	}
	return string(token)
}
