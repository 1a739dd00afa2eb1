package account

import (
	"context"

	"log/slog"

	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/domain"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/repository"
)

// Service exposes account and user reads. No ownership check is applied:
// any caller may read any user or account list, matching the deployed
// behavior of the routes.
type Service struct {
	users    repository.UserRepository
	accounts repository.AccountRepository
	logger   *slog.Logger
}

// New constructs a Service.
func New(users repository.UserRepository, accounts repository.AccountRepository, logger *slog.Logger) Service {
	return Service{users: users, accounts: accounts, logger: logger}
}

// ListByAdmin returns the accounts administered by the given user id. The id
// is format-checked before the store is consulted.
func (s Service) ListByAdmin(ctx context.Context, userID string) ([]domain.Account, error) {
	id, err := domain.ParseID(userID)
	if err != nil {
		return nil, err
	}
	return s.accounts.ListAccountsByAdmin(ctx, id)
}

// GetUser fetches a user by id. A malformed id fails without a store call;
// a well-formed id that matches nothing yields repository.ErrNotFound.
func (s Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	id, err := domain.ParseID(userID)
	if err != nil {
		return nil, err
	}
	return s.users.GetUserByID(ctx, id)
}
