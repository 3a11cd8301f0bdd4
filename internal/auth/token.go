package auth

import (
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"

	"github.com/redmonkez12/devconnector-api/internal/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = fmt.Errorf("%w: token has expired", ErrInvalidToken)
)

// TokenCodec issues and verifies stateless session tokens.
// Uses PASETO v4.local (symmetric encryption with XChaCha20-Poly1305); the only payload is
// the subject identifier plus issued-at and expiry claims.
type TokenCodec struct {
	symmetricKey paseto.V4SymmetricKey
	ttl          time.Duration
	now          func() time.Time
}

func NewTokenCodec(cfg config.AuthConfig) (*TokenCodec, error) {
	if len(cfg.PasetoKey) != 32 {
		return nil, fmt.Errorf("symmetric key must be exactly 32 bytes, got %d", len(cfg.PasetoKey))
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", cfg.TokenTTL)
	}

	key, err := paseto.V4SymmetricKeyFromBytes(cfg.PasetoKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric key: %w", err)
	}

	return &TokenCodec{
		symmetricKey: key,
		ttl:          cfg.TokenTTL,
		now:          time.Now,
	}, nil
}

// TTL returns the lifetime of issued tokens.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue creates a token for subjectID that expires TTL from now.
func (c *TokenCodec) Issue(subjectID string) (string, error) {
	if subjectID == "" {
		return "", errors.New("subject is required")
	}

	// Claims are serialized to the second.
	now := c.now().Truncate(time.Second)

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(c.ttl))
	token.SetSubject(subjectID)

	return token.V4Encrypt(c.symmetricKey, nil), nil
}

// Verify returns the subject of a token. Every failure, whether tampering, malformed input,
// missing claims or expiry, is reported as ErrInvalidToken.
func (c *TokenCodec) Verify(tokenStr string) (string, error) {
	// Expiry is checked below against the codec clock.
	parser := paseto.NewParserWithoutExpiryCheck()

	token, err := parser.ParseV4Local(c.symmetricKey, tokenStr, nil)
	if err != nil {
		return "", ErrInvalidToken
	}

	expiresAt, err := token.GetExpiration()
	if err != nil {
		return "", ErrInvalidToken
	}
	if !c.now().Before(expiresAt) {
		return "", ErrExpiredToken
	}

	subject, err := token.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}

	return subject, nil
}
