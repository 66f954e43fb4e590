package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 72 * time.Hour

// GenerateJWT issues the session token returned at login. The email
// claim is what AuthMiddleware resolves back to the nutritionist
// account.
func GenerateJWT(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"iss":   "nutrikallpa",
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
