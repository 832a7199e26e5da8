package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserIDClaim is the claim carrying the subject user id
const UserIDClaim = "userId"

var (
	// ErrMissingToken means the Authorization header was absent or not a bearer token
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken means the token failed verification
	ErrInvalidToken = errors.New("invalid token")
)

// Verifier checks HS256 bearer tokens against the server secret.
// It has no side effects and is safe for concurrent use.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier bound to secret
func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// ParseBearer extracts the token from an "Authorization: Bearer <token>" header value
func (v *Verifier) ParseBearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// Verify validates the token and returns the user id it was issued for
func (v *Verifier) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}

	userID, ok := claims[UserIDClaim].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: missing %s claim", ErrInvalidToken, UserIDClaim)
	}

	return userID, nil
}

// VerifyHeader combines ParseBearer and Verify
func (v *Verifier) VerifyHeader(header string) (string, error) {
	token, err := v.ParseBearer(header)
	if err != nil {
		return "", err
	}
	return v.Verify(token)
}

// Issuer signs tokens the Verifier accepts. Used by the seed tool and tests.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer creates an issuer bound to secret
func NewIssuer(secret []byte) *Issuer {
	return &Issuer{secret: secret, now: time.Now}
}

// Issue signs a token for userID valid for ttl
func (i *Issuer) Issue(userID string, ttl time.Duration) (string, time.Time, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(ttl)

	claims := jwt.MapClaims{
		UserIDClaim: userID,
		"exp":       expiresAt.Unix(),
		"iat":       issuedAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}
