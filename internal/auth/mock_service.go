package auth

import (
	"strings"
	"sync"
)

// MockCall records a method call for assertion
type MockCall struct {
	Method string
	Args   []interface{}
}

// MockVerifier is a mock implementation of TokenVerifier for testing.
// By default a token is accepted when it appears in Tokens.
type MockVerifier struct {
	mu sync.Mutex

	// Call tracking
	Calls []MockCall

	// Configurable function override
	VerifyFunc func(token string) (string, error)

	// Tokens maps accepted tokens to user ids
	Tokens map[string]string
}

// NewMockVerifier creates a new mock verifier with sensible defaults
func NewMockVerifier() *MockVerifier {
	return &MockVerifier{
		Calls:  make([]MockCall, 0),
		Tokens: make(map[string]string),
	}
}

func (m *MockVerifier) recordCall(method string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MockCall{Method: method, Args: args})
}

// GetCallsForMethod returns calls for a specific method
func (m *MockVerifier) GetCallsForMethod(method string) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []MockCall
	for _, call := range m.Calls {
		if call.Method == method {
			result = append(result, call)
		}
	}
	return result
}

// ParseBearer mocks the bearer header parsing
func (m *MockVerifier) ParseBearer(header string) (string, error) {
	m.recordCall("ParseBearer", header)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// Verify mocks token verification
func (m *MockVerifier) Verify(token string) (string, error) {
	m.recordCall("Verify", token)
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if userID, ok := m.Tokens[token]; ok {
		return userID, nil
	}
	return "", ErrInvalidToken
}

// VerifyHeader mocks header verification
func (m *MockVerifier) VerifyHeader(header string) (string, error) {
	token, err := m.ParseBearer(header)
	if err != nil {
		return "", err
	}
	return m.Verify(token)
}

// Ensure MockVerifier implements TokenVerifier
var _ TokenVerifier = (*MockVerifier)(nil)
