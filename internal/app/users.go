package app

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"spotstay/internal/domain"
)

// UserService covers signup, login and logout. Passwords are stored as
// bcrypt hashes; successful logins mint a revocable bearer token.
type UserService struct {
	users  domain.UserRepository
	tokens domain.TokenManager
}

func NewUserService(users domain.UserRepository, tokens domain.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// AuthResult pairs the safe user view with its freshly issued token.
type AuthResult struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

func (s *UserService) Signup(ctx context.Context, in SignupInput) (AuthResult, error) {
	if errs := ValidateSignup(in); len(errs) > 0 {
		return AuthResult{}, &domain.ValidationError{Errors: errs}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}
	u, err := s.users.CreateUser(ctx, domain.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Username:       in.Username,
		HashedPassword: hash,
	})
	if err != nil {
		return AuthResult{}, err
	}
	return s.authResult(ctx, u)
}

func (s *UserService) Login(ctx context.Context, credential, password string) (AuthResult, error) {
	u, err := s.users.GetUserByCredential(ctx, credential)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResult{}, domain.ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if bcrypt.CompareHashAndPassword(u.HashedPassword, []byte(password)) != nil {
		return AuthResult{}, domain.ErrInvalidCredentials
	}
	return s.authResult(ctx, u)
}

func (s *UserService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (UserView, error) {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		return UserView{}, err
	}
	return userView(u), nil
}

func (s *UserService) authResult(ctx context.Context, u domain.User) (AuthResult, error) {
	token, err := s.tokens.Issue(ctx, u.ID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: userView(u), Token: token}, nil
}
