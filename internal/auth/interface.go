package auth

// TokenVerifier defines the contract the HTTP layer needs from token verification.
// This enables mocking for middleware tests without signing real tokens.
type TokenVerifier interface {
	ParseBearer(header string) (string, error)
	Verify(token string) (string, error)
	VerifyHeader(header string) (string, error)
}

// Ensure Verifier implements TokenVerifier
var _ TokenVerifier = (*Verifier)(nil)
