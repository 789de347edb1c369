package response

import "beachrent/internal/domain/entities"

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user,omitempty"`
}

func FromAuthState(a entities.AuthState) AuthResponse {
	out := AuthResponse{Token: a.Token}
	if a.User != nil {
		u := FromUser(*a.User)
		out.User = &u
	}
	return out
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

type SessionResponse struct {
	SessionID     string `json:"session_id"`
	Authenticated bool   `json:"authenticated"`
}
