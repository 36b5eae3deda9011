package auth

import "github.com/heartmarshall/freshkeep-backend/internal/domain"

// TokenType is the OAuth2 token type reported to clients.
const TokenType = "bearer"

// AuthResult is returned by Signup, Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    int    // access token lifetime in seconds
	User         *domain.User
}
