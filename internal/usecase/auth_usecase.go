package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrInvalidPhone       = errors.New("phone number is required")
	ErrInvalidOTPCode     = errors.New("otp code is required")
	ErrInvalidSignup      = errors.New("name, email, phone and password are required")
)

// IAuthUseCase wraps the platform auth endpoints and keeps the session's
// auth slice (token + cached user) persisted on every change.

type IAuthUseCase interface {
	Login(ctx context.Context, sessionID, email, password string) (entities.AuthState, error)
	Signup(ctx context.Context, sessionID string, input entities.SignupInput) (entities.AuthState, error)
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, sessionID, phone, code string) (entities.AuthState, error)
	GetProfile(ctx context.Context, sessionID string) (entities.User, error)
	UpdateProfile(ctx context.Context, sessionID string, patch entities.ProfilePatch) (entities.User, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthUseCase struct {
	sessions interfaces.ISessionRepository
	auth     interfaces.IAuthService
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(sessions interfaces.ISessionRepository, auth interfaces.IAuthService) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, auth: auth}
}

func (u *AuthUseCase) Login(ctx context.Context, sessionID, email, password string) (entities.AuthState, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.AuthState{}, ErrInvalidCredentials
	}

	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.AuthState{}, err
	}

	state, err := u.auth.Login(ctx, email, password)
	if err != nil {
		return entities.AuthState{}, err
	}
	return u.persistAuth(ctx, s.ID, state)
}

func (u *AuthUseCase) Signup(ctx context.Context, sessionID string, input entities.SignupInput) (entities.AuthState, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
		return entities.AuthState{}, ErrInvalidSignup
	}

	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.AuthState{}, err
	}

	state, err := u.auth.Signup(ctx, input)
	if err != nil {
		return entities.AuthState{}, err
	}
	return u.persistAuth(ctx, s.ID, state)
}

func (u *AuthUseCase) SendOTP(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrInvalidPhone
	}
	return u.auth.SendOTP(ctx, phone)
}

func (u *AuthUseCase) VerifyOTP(ctx context.Context, sessionID, phone, code string) (entities.AuthState, error) {
	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)
	if phone == "" {
		return entities.AuthState{}, ErrInvalidPhone
	}
	if code == "" {
		return entities.AuthState{}, ErrInvalidOTPCode
	}

	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.AuthState{}, err
	}

	state, err := u.auth.VerifyOTP(ctx, phone, code)
	if err != nil {
		return entities.AuthState{}, err
	}
	return u.persistAuth(ctx, s.ID, state)
}

func (u *AuthUseCase) GetProfile(ctx context.Context, sessionID string) (entities.User, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.User{}, err
	}
	if !s.Auth.IsAuthenticated() {
		return entities.User{}, ErrNotAuthenticated
	}

	user, err := u.auth.GetProfile(ctx, s.Auth.Token)
	if err != nil {
		return entities.User{}, err
	}

	s.Auth.User = &user
	if _, err := u.persistAuth(ctx, s.ID, s.Auth); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (u *AuthUseCase) UpdateProfile(ctx context.Context, sessionID string, patch entities.ProfilePatch) (entities.User, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.User{}, err
	}
	if !s.Auth.IsAuthenticated() {
		return entities.User{}, ErrNotAuthenticated
	}

	user, err := u.auth.UpdateProfile(ctx, s.Auth.Token, patch)
	if err != nil {
		return entities.User{}, err
	}

	s.Auth.User = &user
	if _, err := u.persistAuth(ctx, s.ID, s.Auth); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return err
	}
	_, err = u.persistAuth(ctx, s.ID, entities.AuthState{})
	return err
}

func (u *AuthUseCase) session(ctx context.Context, sessionID string) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, ErrInvalidSessionID
	}
	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *AuthUseCase) persistAuth(ctx context.Context, sessionID string, state entities.AuthState) (entities.AuthState, error) {
	if err := u.sessions.SaveAuth(ctx, sessionID, state); err != nil {
		log.Printf("[auth][usecase] auth slice persist failed session_id=%s err=%v", sessionID, err)
		return entities.AuthState{}, err
	}
	return state, nil
}
