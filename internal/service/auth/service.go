package auth

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/domain"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/repository"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/pkg/config"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/pkg/crypto"
	jwtpkg "github.com/Ruhullah517/ExpenseIncomeBackendMongo/pkg/jwt"
)

var (
	// ErrUserExists indicates the signup email is already registered.
	ErrUserExists = errors.New("auth: user already exists")
	// ErrUserNotFound indicates no user matches the login email.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrInvalidPassword indicates the password hash comparison failed.
	ErrInvalidPassword = errors.New("auth: invalid password")
	// ErrMissingField indicates a required signup field was empty.
	ErrMissingField = errors.New("auth: missing required field")
)

// Service handles authentication workflows.
type Service struct {
	users       repository.UserRepository
	accounts    repository.AccountRepository
	memberships repository.MembershipRepository
	logger      *slog.Logger
	cfg         config.APIConfig
}

// New constructs a Service.
func New(users repository.UserRepository, accounts repository.AccountRepository, memberships repository.MembershipRepository, logger *slog.Logger, cfg config.APIConfig) Service {
	return Service{users: users, accounts: accounts, memberships: memberships, logger: logger, cfg: cfg}
}

// Signup registers a new user with a personal account and an admin
// membership. The three creations run sequentially with no rollback: a
// failure after CreateUser leaves the user (and possibly the account)
// without its full membership graph.
func (s Service) Signup(ctx context.Context, email, password, name string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" || password == "" || strings.TrimSpace(name) == "" {
		return nil, ErrMissingField
	}
	_, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrUserExists
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Email: email, PasswordHash: hash, Name: name}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	account := &domain.Account{AdminID: user.ID}
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	membership := &domain.Membership{UserID: user.ID, AccountID: account.ID, Role: domain.RoleAdmin}
	if err := s.memberships.CreateMembership(ctx, membership); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID.Hex(), "account_id", account.ID.Hex())
	return user, nil
}

// Login authenticates a user and returns a signed bearer token.
func (s Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidPassword
	}
	token, err := jwtpkg.GenerateToken(user.ID.Hex(), s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", "user_id", user.ID.Hex())
	return user, token, nil
}

// VerifyToken validates a bearer token and returns the embedded user id.
func (s Service) VerifyToken(token string) (string, error) {
	claims, err := jwtpkg.Parse(strings.TrimSpace(token), s.cfg.JWTSecret)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
