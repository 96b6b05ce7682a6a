package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-backend/pkg/errors"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestStaticResolver(t *testing.T) {
	resolver, err := NewStaticResolver("MR_FAKE")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/todos", nil)
	userID, err := resolver.Resolve(r)
	require.NoError(t, err)
	assert.Equal(t, "MR_FAKE", userID)
}

func TestNewStaticResolver_EmptyID(t *testing.T) {
	_, err := NewStaticResolver("")
	assert.Error(t, err)
}

func TestCognitoResolver_Subject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub": "cognito-user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest(http.MethodGet, "/todos", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	userID, err := NewCognitoResolver().Resolve(r)
	require.NoError(t, err)
	assert.Equal(t, "cognito-user-42", userID)
}

func TestCognitoResolver_MissingHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/todos", nil)

	_, err := NewCognitoResolver().Resolve(r)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestCognitoResolver_BadFormat(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/todos", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	_, err := NewCognitoResolver().Resolve(r)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestCognitoResolver_MalformedToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/todos", nil)
	r.Header.Set("Authorization", "Bearer not.a.jwt")

	_, err := NewCognitoResolver().Resolve(r)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestCognitoResolver_NoSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"email": "someone@example.com"})

	r := httptest.NewRequest(http.MethodGet, "/todos", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err := NewCognitoResolver().Resolve(r)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}
