// Package auth resolves the caller's owner identifier from an HTTP request.
//
// The handler never validates credentials itself. In the deployed topology
// the API Gateway Cognito authorizer rejects unauthenticated calls before
// they reach the function, so the resolver only extracts the identity the
// front door already verified. Local development uses an explicit mock mode
// with a fixed owner id instead.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	apperrors "todo-backend/pkg/errors"
)

// IdentityResolver produces the owner identifier for a request.
type IdentityResolver interface {
	Resolve(r *http.Request) (string, error)
}

// CognitoResolver extracts the Cognito subject from the bearer token.
// Signature verification already happened at the API Gateway authorizer;
// only the claims are read here.
type CognitoResolver struct {
	parser *jwt.Parser
}

// NewCognitoResolver creates a resolver for authorizer-verified tokens.
func NewCognitoResolver() *CognitoResolver {
	return &CognitoResolver{parser: jwt.NewParser()}
}

// Resolve implements IdentityResolver.
func (c *CognitoResolver) Resolve(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		authHeader = r.Header.Get("authorization")
	}
	if authHeader == "" {
		return "", apperrors.NewUnauthorizedError("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.NewUnauthorizedError("invalid authorization header format")
	}

	claims := jwt.MapClaims{}
	if _, _, err := c.parser.ParseUnverified(parts[1], claims); err != nil {
		return "", apperrors.NewUnauthorizedError("malformed bearer token").WithCause(err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", apperrors.NewUnauthorizedError("token has no subject claim")
	}
	return sub, nil
}

// StaticResolver returns a fixed owner id. Used only in mock auth mode.
type StaticResolver struct {
	UserID string
}

// NewStaticResolver creates a fixed-identity resolver.
func NewStaticResolver(userID string) (*StaticResolver, error) {
	if userID == "" {
		return nil, fmt.Errorf("static resolver requires a user id")
	}
	return &StaticResolver{UserID: userID}, nil
}

// Resolve implements IdentityResolver.
func (s *StaticResolver) Resolve(*http.Request) (string, error) {
	return s.UserID, nil
}
