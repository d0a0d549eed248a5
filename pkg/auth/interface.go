package auth

// TokenManager defines the interface for access token operations.
type TokenManager interface {
	// GenerateToken creates a signed token with the username as subject.
	GenerateToken(username string) (string, error)
	// ValidateToken parses and validates a token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
