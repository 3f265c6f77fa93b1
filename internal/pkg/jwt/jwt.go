package jwt

import (
	"errors"
	"time"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() session.Identity {
	return session.Identity{UserID: c.UserID, DisplayName: c.DisplayName}
}

type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
	clock     clock.Clock
}

func NewService(secretKey string, ttl time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		clock:     clk,
	}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) Issue(id session.Identity) (Token, error) {
	if !id.Authenticated() {
		return Token{}, ErrInvalidToken
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)
	tokenID := uuid.NewString()
	claims := Claims{
		UserID:      id.UserID,
		DisplayName: id.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: signed, ID: tokenID, ExpiresAt: expiresAt.Truncate(time.Second)}, nil
}

func (s *Service) Parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
