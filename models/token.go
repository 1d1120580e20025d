package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued to authenticated users. The user ID
// travels in the standard "sub" claim, the role in a private "role_id" claim.
type Claims struct {
	jwt.RegisteredClaims

	// RoleID is the role of the token owner, used by the employee gate.
	RoleID int64 `json:"role_id"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in the "auth-token" header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// RoleID is the owner's role extracted from the "role_id" claim.
	RoleID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	if t.Token == nil {
		return 0, fmt.Errorf("error extracting UserID from token: empty token")
	}

	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
