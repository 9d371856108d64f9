package repository

import (
	"context"
	"time"

	"parcelbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTransactionRepo struct {
	DB *mongo.Database
}

func NewMongoTransactionRepo(db *mongo.Database) *MongoTransactionRepo {
	return &MongoTransactionRepo{DB: db}
}

func (r *MongoTransactionRepo) col() *mongo.Collection {
	return r.DB.Collection(transactionCollection)
}

// AppendTransaction relies on the sparse unique idempotency_key index.
func (r *MongoTransactionRepo) AppendTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	_, err := r.col().InsertOne(ctx, tx)
	if isDuplicateOn(err, idempotencyKeyIndex) {
		return ErrDuplicateIdempotencyKey
	}
	return err
}

func (r *MongoTransactionRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	doc := bson.M{}
	if filter.BranchID != "" {
		doc["branch_id"] = filter.BranchID
	}
	if filter.Type != "" {
		doc["type"] = filter.Type
	}
	if filter.BookingID != "" {
		doc["booking_id"] = filter.BookingID
	}
	if created := timeRange(filter.From, filter.To); created != nil {
		doc["created_at"] = created
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.col().Find(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.Transaction{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
