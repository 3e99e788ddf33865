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

// orderRepository implements the domain.OrderRepository interface on the
// 'orders' collection.
type orderRepository struct {
	db *Database
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *Database) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := model.OrderFromDomain(order)
	if err != nil {
		return repository.ErrInvalidID
	}

	res, err := repo.db.Collection(ColOrders).InsertOne(ctx, orderM)
	if err != nil {
		return errors.Wrap(wrapStorageError(err), "failed to insert order")
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		order.ID = oid.Hex()
	}

	return nil
}

// FindByID retrieves a single order by its storage identifier.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	orderM, err := findOne[model.OrderModel](ctx, repo.db.Collection(ColOrders), bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return orderM.ToDomain(), nil
}

// List retrieves the orders matching the scope, newest first. Zero-value
// scope fields are not applied, so the empty scope lists everything.
func (repo *orderRepository) List(ctx context.Context, scope repository.OrderScope) ([]*entity.Order, error) {
	filter := bson.D{}
	if scope.BuyerEmail != "" {
		filter = append(filter, bson.E{Key: "buyer_email", Value: scope.BuyerEmail})
	}
	if scope.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: scope.Status})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	orderMs, err := findMany[model.OrderModel](ctx, repo.db.Collection(ColOrders), filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, orderM.ToDomain())
	}

	return orders, nil
}

// UpdateStatus applies one status transition. Only the fields present in the
// update are written; timestamp fields already stored stay as they are, so a
// transition never clears an earlier approved_at or rejected_at.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, update repository.OrderStatusUpdate) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	set := bson.D{
		{Key: "status", Value: update.Status},
		{Key: "processed_at", Value: update.ProcessedAt},
	}
	if update.ApprovedAt != nil {
		set = append(set, bson.E{Key: "approved_at", Value: *update.ApprovedAt})
	}
	if update.RejectedAt != nil {
		set = append(set, bson.E{Key: "rejected_at", Value: *update.RejectedAt})
	}

	res, err := repo.db.Collection(ColOrders).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return errors.Wrap(wrapStorageError(err), "failed to update order status")
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// AppendTracking pushes one tracking event onto the order's history and
// refreshes the current tracking status in the same single-document update.
func (repo *orderRepository) AppendTracking(ctx context.Context, id string, event entity.TrackingEvent) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	eventM := model.TrackingEventModel{
		Status:    event.Status,
		Location:  event.Location,
		Note:      event.Note,
		AppliedAt: event.AppliedAt,
	}

	res, err := repo.db.Collection(ColOrders).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "tracking_history", Value: eventM}}},
			{Key: "$set", Value: bson.D{
				{Key: "current_status", Value: event.Status},
				{Key: "last_tracking_update", Value: event.AppliedAt},
			}},
		})
	if err != nil {
		return errors.Wrap(wrapStorageError(err), "failed to append tracking event")
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeletePendingByBuyer deletes the order through a filter that carries the
// ownership and pending-status conditions, so a mismatch on either deletes
// nothing and reports ErrNotFound.
func (repo *orderRepository) DeletePendingByBuyer(ctx context.Context, id, buyerEmail string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := repo.db.Collection(ColOrders).DeleteOne(ctx, bson.D{
		{Key: "_id", Value: oid},
		{Key: "buyer_email", Value: buyerEmail},
		{Key: "status", Value: entity.OrderStatusPending},
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}
