package entities

import "time"

// User is the profile cached from the platform API.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SignupInput is the payload for account creation.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ProfilePatch carries partial profile updates; nil fields stay untouched.
type ProfilePatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// AuthState is the persisted auth slice: the bearer token plus the cached
// user object.
type AuthState struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

func (a AuthState) IsAuthenticated() bool {
	return a.Token != ""
}

// Session is one device session's persisted application state. Each slice
// is serialized independently under a fixed key (auth, booking, bookings) so
// a change to one never rewrites the others.
type Session struct {
	ID        string       `json:"id"`
	Auth      AuthState    `json:"auth"`
	Draft     BookingDraft `json:"booking"`
	Orders    []Order      `json:"bookings"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
