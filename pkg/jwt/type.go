package jwt

import "github.com/golang-jwt/jwt/v5"

// Config holds the verification settings shared with the issuing auth service.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
}

// Claims represents JWT claims structure.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  []string
}
