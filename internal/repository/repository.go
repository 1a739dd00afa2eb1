package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/domain"
)

// UserRepository persists users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id bson.ObjectID) (*domain.User, error)
}

// AccountRepository persists tenant accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	ListAccountsByAdmin(ctx context.Context, adminID bson.ObjectID) ([]domain.Account, error)
}

// MembershipRepository persists user/account role edges.
type MembershipRepository interface {
	CreateMembership(ctx context.Context, membership *domain.Membership) error
}

// ExpenseRepository persists expenses.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense *domain.Expense) error
	ListExpensesByAccount(ctx context.Context, accountID bson.ObjectID) ([]domain.Expense, error)
}
