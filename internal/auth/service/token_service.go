package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/patrykJ113/edicom-api/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrykJ113/edicom-api/internal/auth/domain"
	"github.com/patrykJ113/edicom-api/internal/auth/dto"
	autherror "github.com/patrykJ113/edicom-api/internal/errors"
)

const (
	DefaultAccessTokenExpiry  = 5 * time.Minute
	DefaultRefreshTokenExpiry = 30 * 24 * time.Hour
)

type TokenGenerator interface {
	Generate(user *domain.User) (*dto.TokenPair, error)
	GetRefreshTokenExpiry() time.Duration
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error)
}

type TokenConfig struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type TokenService struct {
	accessSecret  string
	refreshSecret string
	accessExpiry  time.Duration
	refreshExpiry time.Duration

	now func() time.Time
}

// JWTCustomClaims is the payload shared by access and refresh tokens. The
// subject claim carries the user id.
type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

var _ TokenGenerator = (*TokenService)(nil)

// NewTokenService fails with ErrMissingSecret when either signing secret is
// empty. Zero expiries fall back to 5 minutes and 30 days.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("access token: %w", autherror.ErrMissingSecret)
	}
	if cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("refresh token: %w", autherror.ErrMissingSecret)
	}

	ts := &TokenService{
		accessSecret:  cfg.AccessTokenSecret,
		refreshSecret: cfg.RefreshTokenSecret,
		accessExpiry:  cfg.AccessTokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
		now:           time.Now,
	}
	if ts.accessExpiry <= 0 {
		ts.accessExpiry = DefaultAccessTokenExpiry
	}
	if ts.refreshExpiry <= 0 {
		ts.refreshExpiry = DefaultRefreshTokenExpiry
	}

	return ts, nil
}

func (ts *TokenService) Generate(user *domain.User) (*dto.TokenPair, error) {
	now := ts.now()

	accessToken, err := ts.sign(user, now, ts.accessExpiry, ts.accessSecret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken, err := ts.sign(user, now, ts.refreshExpiry, ts.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (ts *TokenService) sign(user *domain.User, now time.Time, ttl time.Duration, secret string) (string, error) {
	claims := JWTCustomClaims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// String never includes the signing secrets.
func (ts *TokenService) String() string {
	return fmt.Sprintf("TokenService{accessExpiry: %s, refreshExpiry: %s}", ts.accessExpiry, ts.refreshExpiry)
}

// GoString keeps %#v from printing the secrets too.
func (ts *TokenService) GoString() string {
	return ts.String()
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.refreshExpiry
}

// VerifyAccessToken parses and validates the given access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.VerifyToken(tokenString, ts.accessSecret)
}

// VerifyRefreshToken parses and validates the given refresh token string.
func (ts *TokenService) VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.VerifyToken(tokenString, ts.refreshSecret)
}

// VerifyToken checks signature and expiry against secret. A token whose
// signature is valid but whose exp has passed yields ErrTokenExpired; every
// other failure yields ErrTokenInvalid.
func (ts *TokenService) VerifyToken(tokenString, secret string) (*JWTCustomClaims, error) {
	if tokenString == "" {
		return nil, autherror.ErrTokenInvalid
	}

	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", autherror.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", autherror.ErrTokenInvalid, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}
