package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Validate JWT against the Cognito user pool signing keys.
func (s *server) validateJWT(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, errors.New("invalid token: missing kid")
		}
		if key, found := s.cognitoPublicKeys[kid]; found {
			return key, nil
		}
		return nil, errors.New("invalid token: unknown kid")
	}, jwt.WithIssuer(fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", s.config.AwsRegion, s.config.CognitoUserPoolId)))
	if err != nil {
		return nil, err
	}
	return token, nil
}

// auth resolves the acting user from the request's bearer token.
func (s *server) auth(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("no token, authorization denied")
	}
	token, err := s.validateJWT(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return "", fmt.Errorf("token is not valid: %w", err)
	}
	userId, err := token.Claims.GetSubject()
	if err != nil || userId == "" {
		return "", errors.New("token is not valid: missing sub")
	}
	return userId, nil
}
