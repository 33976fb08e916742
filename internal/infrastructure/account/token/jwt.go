package token

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
)

type Config struct {
	Secret string
	Issuer string
	// TTL of zero issues tokens without expiry.
	TTL time.Duration
}

type accessClaims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 access tokens carrying the user id.
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(cfg Config) (*JWTService, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, crerr.New("jwt secret is required")
	}

	return &JWTService{
		secret: []byte(secret),
		issuer: strings.TrimSpace(cfg.Issuer),
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

func (s *JWTService) IssueAccessToken(_ context.Context, userID int64) (string, error) {
	now := s.now()
	claims := accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatInt(userID, 10),
			Issuer:   s.issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", crerr.Wrap(err, "sign access token")
	}

	return signed, nil
}

func (s *JWTService) VerifyAccessToken(_ context.Context, raw string) (user.Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return user.Principal{}, fmt.Errorf("%w: invalid access token", usecase.ErrUnauthorized)
	}
	if claims.UserID <= 0 {
		return user.Principal{}, fmt.Errorf("%w: token has no user", usecase.ErrUnauthorized)
	}

	return user.Principal{UserID: claims.UserID}, nil
}
