package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer      = "pos-api"
	tokenUseAccess   = "access"
	tokenUseRefresh  = "refresh"
	errUnexpectedAlg = "unexpected signing method"
)

// OperatorClaims are carried by access tokens.
type OperatorClaims struct {
	OperatorID uuid.UUID `json:"operator_id"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	Use        string    `json:"use"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	Use string `json:"use"`
	jwt.RegisteredClaims
}

// JWTManager handles JWT token generation and validation
type JWTManager struct {
	secretKey          []byte
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
	now                func() time.Time
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, accessExpiry, refreshExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:          []byte(secret),
		accessTokenExpiry:  accessExpiry,
		refreshTokenExpiry: refreshExpiry,
		now:                time.Now,
	}
}

// AccessTTL is the lifetime of issued access tokens.
func (m *JWTManager) AccessTTL() time.Duration {
	return m.accessTokenExpiry
}

func (m *JWTManager) registered(subject uuid.UUID, ttl time.Duration) jwt.RegisteredClaims {
	now := m.now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    tokenIssuer,
		Subject:   subject.String(),
		ID:        uuid.NewString(),
	}
}

// GenerateAccessToken generates a new access token
func (m *JWTManager) GenerateAccessToken(operatorID uuid.UUID, username, role string) (string, error) {
	claims := &OperatorClaims{
		OperatorID:       operatorID,
		Username:         username,
		Role:             role,
		Use:              tokenUseAccess,
		RegisteredClaims: m.registered(operatorID, m.accessTokenExpiry),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
}

// GenerateRefreshToken generates a new refresh token
func (m *JWTManager) GenerateRefreshToken(operatorID uuid.UUID) (string, error) {
	claims := &refreshClaims{
		Use:              tokenUseRefresh,
		RegisteredClaims: m.registered(operatorID, m.refreshTokenExpiry),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
}

func (m *JWTManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New(errUnexpectedAlg)
	}
	return m.secretKey, nil
}

// ValidateAccessToken validates an access token and returns the claims
func (m *JWTManager) ValidateAccessToken(tokenString string) (*OperatorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, m.keyFunc, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*OperatorClaims)
	if !ok || !token.Valid || claims.Use != tokenUseAccess {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ValidateRefreshToken validates a refresh token and returns the operator ID
func (m *JWTManager) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &refreshClaims{}, m.keyFunc, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*refreshClaims)
	if !ok || !token.Valid || claims.Use != tokenUseRefresh {
		return uuid.Nil, errors.New("invalid token")
	}

	operatorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("invalid operator ID in token")
	}

	return operatorID, nil
}
