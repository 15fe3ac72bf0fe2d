// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/curllabs/curllabs-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim. The backend refuses to exchange a
// token whose type is not "refresh".
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims are the claims issued by the backend: registered claims plus
// the token type.
type TokenClaims struct {
	jwt.RegisteredClaims
	Type string `json:"type"`
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Subject   (sub):  the user ID encoded as a string
//   - ID        (jti):  a fresh UUID so that two tokens issued within the same
//     second still differ
//   - IssuedAt  (iat):  the current time
//   - ExpiresAt (exp):  the current time plus tokenDuration
//   - Type      (type): tokenType
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenTypeAccess, 42, time.Hour, "secret")
func GenerateJWTToken(tokenType string, userID int64, tokenDuration time.Duration, signKey string) (string, error) {
	if tokenType == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        NewUUIDGenerator().Generate(),
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Type: tokenType,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies the signature and expiry of tokenString,
// checks that its "type" claim equals tokenType and returns the user ID held
// in the subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenType string) (int64, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return 0, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Type != tokenType {
		return 0, fmt.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.Subject == "" {
		return 0, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return userID, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseAccessClaims reads the subject and expiry of an access token without
// verifying its signature. The subject may be encoded either as a string or
// as a number.
func ParseAccessClaims(tokenString string) (models.AccessClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.AccessClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.AccessClaims{}, errors.New("invalid token claims")
	}

	var result models.AccessClaims
	switch sub := claims["sub"].(type) {
	case string:
		id, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return models.AccessClaims{}, fmt.Errorf("invalid subject: %w", err)
		}
		result.UserID = id
	case float64:
		if sub != math.Trunc(sub) {
			return models.AccessClaims{}, fmt.Errorf("invalid subject %v", sub)
		}
		result.UserID = int64(sub)
	case nil:
	default:
		return models.AccessClaims{}, fmt.Errorf("invalid subject type %T", sub)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return models.AccessClaims{}, err
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	return result, nil
}
