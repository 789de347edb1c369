package platform

import (
	"context"
	"net/http"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"
)

var _ interfaces.IAuthService = (*Client)(nil)

type authResponse struct {
	Token string         `json:"token"`
	User  *entities.User `json:"user,omitempty"`
}

func (r authResponse) toState() entities.AuthState {
	return entities.AuthState{Token: r.Token, User: r.User}
}

func (c *Client) Login(ctx context.Context, email, password string) (entities.AuthState, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return entities.AuthState{}, err
	}
	return resp.toState(), nil
}

func (c *Client) Signup(ctx context.Context, input entities.SignupInput) (entities.AuthState, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", input, &resp); err != nil {
		return entities.AuthState{}, err
	}
	return resp.toState(), nil
}

func (c *Client) SendOTP(ctx context.Context, phone string) error {
	body := struct {
		Phone string `json:"phone"`
	}{Phone: phone}
	return c.do(ctx, http.MethodPost, "/auth/otp/send", "", body, nil)
}

func (c *Client) VerifyOTP(ctx context.Context, phone, code string) (entities.AuthState, error) {
	body := struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}{Phone: phone, Code: code}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/otp/verify", "", body, &resp); err != nil {
		return entities.AuthState{}, err
	}
	return resp.toState(), nil
}

func (c *Client) GetProfile(ctx context.Context, token string) (entities.User, error) {
	var user entities.User
	if err := c.do(ctx, http.MethodGet, "/profile", token, nil, &user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, patch entities.ProfilePatch) (entities.User, error) {
	var user entities.User
	if err := c.do(ctx, http.MethodPatch, "/profile", token, patch, &user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}
