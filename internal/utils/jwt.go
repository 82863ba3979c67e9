package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether tokenString is a JWT whose "exp" claim lies
// in the past. The signature is NOT verified - the client holds no signing
// key; the check only avoids a resume round-trip that the server would
// certainly reject.
//
// Tokens that cannot be parsed or that carry no expiry claim are reported
// as not expired, so the server stays the final authority.
func TokenExpired(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
