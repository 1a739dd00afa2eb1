package account

import (
	"context"
	"errors"
	"io"
	"testing"

	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/domain"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/repository"
)

type countingUserRepository struct {
	users map[bson.ObjectID]*domain.User
	gets  int
}

func (s *countingUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return nil
}

func (s *countingUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}

func (s *countingUserRepository) GetUserByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	s.gets++
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type stubAccountRepository struct {
	accounts []domain.Account
	lists    int
}

func (s *stubAccountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	return nil
}

func (s *stubAccountRepository) ListAccountsByAdmin(ctx context.Context, adminID bson.ObjectID) ([]domain.Account, error) {
	s.lists++
	out := make([]domain.Account, 0)
	for _, a := range s.accounts {
		if a.AdminID == adminID {
			out = append(out, a)
		}
	}
	return out, nil
}

func testService(users *countingUserRepository, accounts *stubAccountRepository) Service {
	return New(users, accounts, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetUserInvalidIDSkipsStore(t *testing.T) {
	users := &countingUserRepository{}
	svc := testService(users, &stubAccountRepository{})

	if _, err := svc.GetUser(context.Background(), "not-an-id"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("GetUser = %v, want ErrInvalidID", err)
	}
	if users.gets != 0 {
		t.Fatalf("store consulted %d times for malformed id, want 0", users.gets)
	}
}

func TestGetUserWellFormedMissingID(t *testing.T) {
	users := &countingUserRepository{}
	svc := testService(users, &stubAccountRepository{})

	if _, err := svc.GetUser(context.Background(), bson.NewObjectID().Hex()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetUser = %v, want ErrNotFound", err)
	}
	if users.gets != 1 {
		t.Fatalf("store consulted %d times, want 1", users.gets)
	}
}

func TestGetUserReturnsUser(t *testing.T) {
	id := bson.NewObjectID()
	users := &countingUserRepository{users: map[bson.ObjectID]*domain.User{
		id: {ID: id, Email: "a@x.com", Name: "Ann"},
	}}
	svc := testService(users, &stubAccountRepository{})

	user, err := svc.GetUser(context.Background(), id.Hex())
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	if user.Name != "Ann" {
		t.Fatalf("user name %q, want Ann", user.Name)
	}
}

func TestListByAdminFiltersByOwner(t *testing.T) {
	admin := bson.NewObjectID()
	other := bson.NewObjectID()
	accounts := &stubAccountRepository{accounts: []domain.Account{
		{ID: bson.NewObjectID(), AdminID: admin},
		{ID: bson.NewObjectID(), AdminID: other},
	}}
	svc := testService(&countingUserRepository{}, accounts)

	got, err := svc.ListByAdmin(context.Background(), admin.Hex())
	if err != nil {
		t.Fatalf("ListByAdmin returned error: %v", err)
	}
	if len(got) != 1 || got[0].AdminID != admin {
		t.Fatalf("unexpected accounts: %+v", got)
	}
}

func TestListByAdminInvalidID(t *testing.T) {
	accounts := &stubAccountRepository{}
	svc := testService(&countingUserRepository{}, accounts)

	if _, err := svc.ListByAdmin(context.Background(), "bogus"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("ListByAdmin = %v, want ErrInvalidID", err)
	}
	if accounts.lists != 0 {
		t.Fatalf("store consulted %d times for malformed id, want 0", accounts.lists)
	}
}
