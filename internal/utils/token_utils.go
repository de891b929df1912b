package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrAdminTokenSubject is returned for a signed admin token without a subject.
var ErrAdminTokenSubject = errors.New("admin token has no subject")

// AdminTokenSigner issues and verifies the HS256 tokens that guard the admin routes.
type AdminTokenSigner struct {
	Secret string
	Issuer string
	Expiry time.Duration
}

// Issue signs a token for adminID, valid from now until now+Expiry.
func (s AdminTokenSigner) Issue(adminID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.Expiry)
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   adminID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm, issuer and time claims and returns the admin ID.
func (s AdminTokenSigner) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return []byte(s.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrAdminTokenSubject
	}
	return claims.Subject, nil
}
