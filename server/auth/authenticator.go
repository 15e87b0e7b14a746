package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/cradlekit/cradle/store"
)

const (
	issuer = "cradle"

	// AccessTokenDuration is the lifetime of issued access tokens.
	AccessTokenDuration = 7 * 24 * time.Hour
)

// UserFinder is the slice of the store the authenticator needs.
type UserFinder interface {
	GetUser(ctx context.Context, find *store.FindUser) (*store.User, error)
}

// Authenticator resolves a bearer credential to a stored user. The
// token is a signed HS256 JWT carrying the user ID as subject.
type Authenticator struct {
	users  UserFinder
	secret []byte
}

// NewAuthenticator creates an authenticator backed by the user store.
func NewAuthenticator(users UserFinder, secret string) *Authenticator {
	return &Authenticator{
		users:  users,
		secret: []byte(secret),
	}
}

// GenerateAccessToken creates a signed JWT for the user.
func (a *Authenticator) GenerateAccessToken(userID int32, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(userID), 10),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Authenticate validates the Authorization header value and returns the
// user it belongs to. Any failure, including an unknown or archived
// user, yields a nil user with an error.
func (a *Authenticator) Authenticate(ctx context.Context, authHeader string) (*store.User, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	if tokenString == "" {
		return nil, errors.New("missing access token")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}
	if claims.Issuer != issuer {
		return nil, errors.Errorf("invalid issuer: %s", claims.Issuer)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 32)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}

	id := int32(userID)
	user, err := a.users.GetUser(ctx, &store.FindUser{ID: &id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	if user.RowStatus == store.Archived {
		return nil, errors.New("user is archived")
	}

	return user, nil
}
