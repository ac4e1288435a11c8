package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pujadesk/pujadesk/client"
)

// Claims mirrors the backend's token payload.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role,omitempty"`
}

// sessionFromToken builds an offline session from token claims without
// verifying the signature. The signature belongs to the backend; the
// client only needs the identity fields and the expiry. Expired tokens
// are refused.
func sessionFromToken(tok string) (*client.Session, bool) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, &claims); err != nil {
		return nil, false
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, false
	}
	role := client.Role(claims.Role)
	if role == "" {
		role = client.RoleUser
	}
	return &client.Session{
		UserID:   claims.Subject,
		Email:    claims.Email,
		FullName: claims.FullName,
		Role:     role,
		Offline:  true,
	}, true
}

// demoSigningKey signs locally issued demo tokens. It matches nothing
// on any real backend; demo sessions only work against demo mode.
var demoSigningKey = []byte("pujadesk-demo-signing-key")

// DemoLogin issues a local session without a backend: the token is
// minted client-side and the role is derived from the email prefix
// ("admin@..." gets admin, everyone else editor). The token is
// persisted like a real one so the rest of the app behaves normally.
func (s *Store) DemoLogin(email string) Result {
	role := client.RoleEditor
	if strings.HasPrefix(strings.ToLower(email), "admin@") {
		role = client.RoleAdmin
	}
	name := strings.SplitN(email, "@", 2)[0]

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "demo-" + name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
		Email:    email,
		FullName: name,
		Role:     string(role),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(demoSigningKey)
	if err != nil {
		return s.failure(err)
	}
	if err := s.api.SetToken(tok); err != nil {
		return s.failure(err)
	}
	sess := &client.Session{
		UserID:   claims.Subject,
		Email:    email,
		FullName: name,
		Role:     role,
	}
	s.transition(StateAuthenticated, sess)
	s.clearError()
	return Result{Success: true, User: sess}
}
