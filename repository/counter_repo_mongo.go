package repository

import (
	"context"
	"errors"

	"parcelbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCounterRepo struct {
	DB *mongo.Database
}

func NewMongoCounterRepo(db *mongo.Database) *MongoCounterRepo {
	return &MongoCounterRepo{DB: db}
}

func (r *MongoCounterRepo) col() *mongo.Collection {
	return r.DB.Collection(counterCollection)
}

// IncrementCounter is a single $inc with upsert. Two first-time upserts can race on the
// unique (branch_id, entity, field) index; the loser retries once and lands on the existing row.
func (r *MongoCounterRepo) IncrementCounter(ctx context.Context, branchID, entity, field string) (int64, error) {
	filter := bson.M{"branch_id": branchID, "entity": entity, "field": field}
	update := bson.M{"$inc": bson.M{"count": int64(1)}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter models.Counter
	err := r.col().FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if isDuplicateOn(err, counterKeyIndex) {
		err = r.col().FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	}
	if err != nil {
		return 0, err
	}
	return counter.Count, nil
}

func (r *MongoCounterRepo) GetCounter(ctx context.Context, branchID, entity, field string) (int64, bool, error) {
	var counter models.Counter
	err := r.col().FindOne(ctx, bson.M{"branch_id": branchID, "entity": entity, "field": field}).Decode(&counter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return counter.Count, true, nil
}
