package user

const (
	RoleAdmin   = "admin"
	RoleReferee = "arbitro"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

func (p Principal) HasRole(roles ...string) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}
