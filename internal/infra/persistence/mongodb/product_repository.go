package mongodb

import (
	"context"
	"time"

	"garflex/internal/domain/entity"
	"garflex/internal/domain/repository"
	"garflex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// productRepository implements the domain.ProductRepository interface on the
// 'products' collection.
type productRepository struct {
	db *Database
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *Database) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := model.ProductFromDomain(product)
	if err != nil {
		return repository.ErrInvalidID
	}

	res, err := repo.db.Collection(ColProducts).InsertOne(ctx, productM)
	if err != nil {
		return errors.Wrap(wrapStorageError(err), "failed to insert product")
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		product.ID = oid.Hex()
	}

	return nil
}

// FindByID retrieves a single product by its storage identifier.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	productM, err := findOne[model.ProductModel](ctx, repo.db.Collection(ColProducts), bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return productM.ToDomain(), nil
}

// List retrieves the products matching the scope, newest first.
func (repo *productRepository) List(ctx context.Context, scope repository.ProductScope) ([]*entity.Product, error) {
	filter := bson.D{}
	if scope.CreatedBy != "" {
		filter = append(filter, bson.E{Key: "created_by", Value: scope.CreatedBy})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	return repo.find(ctx, filter, opts)
}

// ListRecent retrieves the most recently created products, capped at limit.
func (repo *productRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	return repo.find(ctx, bson.D{}, opts)
}

func (repo *productRepository) find(ctx context.Context, filter bson.D, opts ...options.Lister[options.FindOptions]) ([]*entity.Product, error) {
	productMs, err := findMany[model.ProductModel](ctx, repo.db.Collection(ColProducts), filter, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, productM.ToDomain())
	}

	return products, nil
}

// Update applies a partial mutation. When ownedBy is non-empty it becomes
// part of the update filter, so a non-owner mutation matches zero documents
// and surfaces as ErrNotFound instead of a distinct forbidden error.
func (repo *productRepository) Update(ctx context.Context, id string, update repository.ProductUpdate, ownedBy string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	filter := bson.D{{Key: "_id", Value: oid}}
	if ownedBy != "" {
		filter = append(filter, bson.E{Key: "created_by", Value: ownedBy})
	}

	set := bson.D{{Key: "updated_at", Value: time.Now()}}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *update.Price})
	}
	if update.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *update.Category})
	}
	if update.ImageURL != nil {
		set = append(set, bson.E{Key: "image_url", Value: *update.ImageURL})
	}
	if update.Stock != nil {
		set = append(set, bson.E{Key: "stock", Value: *update.Stock})
	}

	res, err := repo.db.Collection(ColProducts).UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return errors.Wrap(wrapStorageError(err), "failed to update product")
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a product with the same ownership-filter semantics as Update.
func (repo *productRepository) Delete(ctx context.Context, id string, ownedBy string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	filter := bson.D{{Key: "_id", Value: oid}}
	if ownedBy != "" {
		filter = append(filter, bson.E{Key: "created_by", Value: ownedBy})
	}

	res, err := repo.db.Collection(ColProducts).DeleteOne(ctx, filter)
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}
