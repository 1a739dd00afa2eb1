package expense

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/domain"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/repository"
)

// ErrMissingField indicates a required expense field was absent.
var ErrMissingField = errors.New("expense: missing required field")

// Input carries the fields of an expense to record. Amount is a pointer so
// an absent amount is distinguishable from zero; Date nil defaults to now.
type Input struct {
	Name      string
	Amount    *float64
	Date      *time.Time
	CreatedBy string
	Type      string
	ImagePath string
	AccountID string
}

// Service records and lists expenses.
type Service struct {
	expenses repository.ExpenseRepository
	logger   *slog.Logger
}

// New constructs a Service.
func New(expenses repository.ExpenseRepository, logger *slog.Logger) Service {
	return Service{expenses: expenses, logger: logger}
}

// Add validates and persists an expense. CreatedBy and AccountID must be
// shaped like store ids; whether they reference stored entities is not
// checked. Nothing is persisted when validation fails.
func (s Service) Add(ctx context.Context, in Input) (*domain.Expense, error) {
	createdBy, err := domain.ParseID(in.CreatedBy)
	if err != nil {
		return nil, err
	}
	accountID, err := domain.ParseID(in.AccountID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Type) == "" || in.Amount == nil {
		return nil, ErrMissingField
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	exp := &domain.Expense{
		Name:      in.Name,
		Amount:    *in.Amount,
		Date:      date,
		CreatedBy: createdBy,
		Type:      in.Type,
		ImagePath: in.ImagePath,
		AccountID: accountID,
	}
	if err := s.expenses.CreateExpense(ctx, exp); err != nil {
		return nil, err
	}
	s.logger.Info("expense recorded", "expense_id", exp.ID.Hex(), "account_id", accountID.Hex())
	return exp, nil
}

// ListByAccount returns every expense recorded against an account.
func (s Service) ListByAccount(ctx context.Context, accountID string) ([]domain.Expense, error) {
	id, err := domain.ParseID(accountID)
	if err != nil {
		return nil, err
	}
	return s.expenses.ListExpensesByAccount(ctx, id)
}
