package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/domain"
	"github.com/Ruhullah517/ExpenseIncomeBackendMongo/internal/repository"
)

const (
	usersCollection       = "users"
	accountsCollection    = "accounts"
	membershipsCollection = "user_accounts"
	expensesCollection    = "expenses"
)

// Repository implements persistence interfaces on MongoDB.
type Repository struct {
	db *mongo.Database
}

// New constructs a Repository over an injected client handle.
func New(client *mongo.Client, database string) *Repository {
	return &Repository{db: client.Database(database)}
}

// ensure Repository satisfies interfaces.
var (
	_ repository.UserRepository       = (*Repository)(nil)
	_ repository.AccountRepository    = (*Repository)(nil)
	_ repository.MembershipRepository = (*Repository)(nil)
	_ repository.ExpenseRepository    = (*Repository)(nil)
)

// EnsureIndexes creates the unique email index. Run once at startup.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CreateUser inserts a user, assigning its id.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	user.ID = bson.NewObjectID()
	_, err := r.db.Collection(usersCollection).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrEmailTaken
	}
	return err
}

// GetUserByEmail fetches a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetUserByID retrieves a user by identifier.
func (r *Repository) GetUserByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	var u domain.User
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateAccount inserts an account, assigning its id.
func (r *Repository) CreateAccount(ctx context.Context, account *domain.Account) error {
	account.ID = bson.NewObjectID()
	_, err := r.db.Collection(accountsCollection).InsertOne(ctx, account)
	return err
}

// ListAccountsByAdmin returns accounts administered by the given user.
func (r *Repository) ListAccountsByAdmin(ctx context.Context, adminID bson.ObjectID) ([]domain.Account, error) {
	cur, err := r.db.Collection(accountsCollection).Find(ctx, bson.M{"admin_id": adminID})
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, 0)
	if err := cur.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateMembership inserts a user/account role edge, assigning its id.
func (r *Repository) CreateMembership(ctx context.Context, membership *domain.Membership) error {
	membership.ID = bson.NewObjectID()
	_, err := r.db.Collection(membershipsCollection).InsertOne(ctx, membership)
	return err
}

// CreateExpense inserts an expense, assigning its id.
func (r *Repository) CreateExpense(ctx context.Context, expense *domain.Expense) error {
	expense.ID = bson.NewObjectID()
	_, err := r.db.Collection(expensesCollection).InsertOne(ctx, expense)
	return err
}

// ListExpensesByAccount returns all expenses recorded against an account.
func (r *Repository) ListExpensesByAccount(ctx context.Context, accountID bson.ObjectID) ([]domain.Expense, error) {
	cur, err := r.db.Collection(expensesCollection).Find(ctx, bson.M{"account_id": accountID})
	if err != nil {
		return nil, err
	}
	expenses := make([]domain.Expense, 0)
	if err := cur.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}
