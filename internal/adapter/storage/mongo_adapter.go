package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/audiophile/storefront/internal/core/domain"
	"github.com/audiophile/storefront/internal/port"
)

var ErrMissingFields = errors.New("order is missing required fields")

type MongoAdapter struct {
	collection *mongo.Collection
}

func NewMongoAdapter(db *mongo.Database) *MongoAdapter {
	return &MongoAdapter{collection: db.Collection("orders")}
}

// Create inserts the order with a fresh internal id, a server-assigned
// creation timestamp and confirmed status, and returns the internal id.
// The caller's status/timestamp/internal id fields are ignored.
func (m *MongoAdapter) Create(ctx context.Context, order domain.Order) (string, error) {
	if order.OrderID == "" || order.CustomerName == "" || order.CustomerEmail == "" || len(order.Items) == 0 {
		return "", ErrMissingFields
	}

	order.InternalID = uuid.NewString()
	order.Status = domain.OrderStatusConfirmed
	order.CreatedAt = time.Now().UTC()

	if _, err := m.collection.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	return order.InternalID, nil
}

// GetByOrderID returns the first record matching the business order id.
func (m *MongoAdapter) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order

	filter := bson.M{"order_id": orderID}
	err := m.collection.FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, port.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	return &order, nil
}

// GetByInternalID looks an order up by its storage-assigned id.
func (m *MongoAdapter) GetByInternalID(ctx context.Context, internalID string) (*domain.Order, error) {
	var order domain.Order

	err := m.collection.FindOne(ctx, bson.M{"internal_id": internalID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, port.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	return &order, nil
}

// CreateIndexes enforces uniqueness of both identifiers at the storage
// layer, so a generation-time collision of business ids is rejected
// instead of producing an ambiguous lookup.
func (m *MongoAdapter) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "internal_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}

	return nil
}

var _ port.OrderRepository = (*MongoAdapter)(nil)
