// model/user.go
package model

// User is the identity the console acts on behalf of
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Token string `json:"-"`
}

// SameIdentity reports whether two users are the same principal
func (u *User) SameIdentity(other *User) bool {
	if u == nil || other == nil {
		return u == nil && other == nil
	}
	return u.ID == other.ID
}
