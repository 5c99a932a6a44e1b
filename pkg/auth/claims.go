package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims for console staff tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Roles  []string  `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Staff role constants. Reviewer and authorizer mirror the two sequential
// approval stages a staff member may act in.
const (
	RoleAdmin      = "admin"
	RoleReviewer   = "reviewer"
	RoleAuthorizer = "authorizer"
	RoleSupport    = "support"
)
