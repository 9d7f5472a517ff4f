package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vincibarbearia/app-agendamento/internal/models"
)

// TokenIssuer signs the session tokens the app hands to a logged-in
// customer.
type TokenIssuer struct {
	secret string
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: secret}
}

func (t *TokenIssuer) Issue(customer models.Customer) (string, error) {
	claims := jwt.MapClaims{
		"sub":   customer.ID,
		"phone": customer.Phone,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.secret))
}
