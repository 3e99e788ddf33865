package mongodb

import (
	"context"

	"garflex/internal/domain/entity"
	"garflex/internal/domain/repository"
	"garflex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// accountRepository implements the domain.AccountRepository interface on the
// 'accounts' collection.
type accountRepository struct {
	db *Database
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *Database) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account. The unique email index rejects a second
// account for the same email with repository.ErrDuplicateKey.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM, err := model.AccountFromDomain(account)
	if err != nil {
		return repository.ErrInvalidID
	}

	res, err := repo.db.Collection(ColAccounts).InsertOne(ctx, accountM)
	if err != nil {
		if wrapped := wrapStorageError(err); errors.Is(wrapped, repository.ErrDuplicateKey) {
			return repository.ErrDuplicateKey
		}

		return errors.Wrap(err, "failed to insert account")
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		account.ID = oid.Hex()
	}

	return nil
}

// FindByEmail retrieves a single account by its unique email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	accountM, err := findOne[model.AccountModel](ctx, repo.db.Collection(ColAccounts), bson.D{{Key: "email", Value: email}})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return accountM.ToDomain(), nil
}

// FindByID retrieves a single account by its storage identifier.
func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	accountM, err := findOne[model.AccountModel](ctx, repo.db.Collection(ColAccounts), bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return accountM.ToDomain(), nil
}

// List retrieves all accounts, newest first.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	accountMs, err := findMany[model.AccountModel](ctx, repo.db.Collection(ColAccounts), bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, accountM.ToDomain())
	}

	return accounts, nil
}

// Update replaces the stored account document. Replacing the whole document
// drops fields the entity no longer carries, which is how a cleared suspend
// reason disappears from the record.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	oid, err := parseObjectID(account.ID)
	if err != nil {
		return err
	}

	accountM, err := model.AccountFromDomain(account)
	if err != nil {
		return repository.ErrInvalidID
	}

	res, err := repo.db.Collection(ColAccounts).ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, accountM)
	if err != nil {
		return errors.Wrap(wrapStorageError(err), "failed to update account")
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes an account by its storage identifier.
func (repo *accountRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := repo.db.Collection(ColAccounts).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}
