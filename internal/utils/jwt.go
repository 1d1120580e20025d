package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-class-reports/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - role_id:         the user's role, checked by the employee gate
//
// issuer, tokenDuration and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("class-reports", 42, 2, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID, roleID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		RoleID: roleID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, RoleID: roleID}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and extracts the user ID (from "sub") and role ID.
// Only HMAC signing methods are accepted.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, RoleID: claims.RoleID}, nil
}

// ParseBearerToken extracts the token from a "Bearer <token>" header value.
// A bare token without the scheme is accepted as well.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	switch {
	case len(parts) == 1:
		return parts[0], nil
	case len(parts) == 2 && strings.EqualFold(parts[0], "Bearer"):
		return parts[1], nil
	default:
		return "", errors.New("invalid authorization header")
	}
}

// ParseClaimsUnverified reads the claims of a token without checking its
// signature. Only for displaying client-side session info.
func ParseClaimsUnverified(tokenString string) (models.Claims, error) {
	var claims models.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.Claims{}, err
	}

	return claims, nil
}
