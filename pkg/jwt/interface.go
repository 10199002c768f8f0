package jwt

import (
	"errors"
	"fmt"

	"diagnosis-srv/pkg/scope"
)

// IManager verifies HS256 tokens issued by the auth service.
// Implementations are safe for concurrent use.
type IManager interface {
	scope.Manager
	VerifyToken(tokenString string) (*Claims, error)
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
	}, nil
}

func validateConfig(cfg Config) error {
	if cfg.SecretKey == "" {
		return errors.New("jwt: secret key is required")
	}
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("jwt: secret key must be at least %d characters", MinSecretKeyLen)
	}
	return nil
}
