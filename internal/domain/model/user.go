package model

const (
	RoleStudent = "student"
	RoleCreator = "creator"
)

// Identity is the authenticated user's session record. It is the only
// entity persisted across restarts; a zero Identity means "not signed in".
type Identity struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token,omitempty"`
}

func (id Identity) IsZero() bool {
	return id.ID == ""
}
