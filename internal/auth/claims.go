package auth

import "skyharbor/booking/internal/constants"

// UserClaims is what the access boundary hands to handlers once a
// request has been authenticated.
type UserClaims interface {
	UserID() int64
	Email() string
	Role() string
	IsStaff() bool
}

type JWTClaims struct {
	UserIDValue int64
	EmailValue  string
	RoleValue   constants.UserRole
}

func (c *JWTClaims) UserID() int64 { return c.UserIDValue }
func (c *JWTClaims) Email() string { return c.EmailValue }
func (c *JWTClaims) Role() string  { return string(c.RoleValue) }
func (c *JWTClaims) IsStaff() bool { return c.RoleValue == constants.RoleStaff }
