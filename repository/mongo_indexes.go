package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Unique index names. Duplicate-key errors are matched against these so that a
// collision on another index (usually _id) is not mistaken for a domain duplicate.
const (
	branchCodeIndex     = "branch_code_unique"
	counterKeyIndex     = "counter_key_unique"
	lrNumberIndex       = "lr_number_unique"
	idempotencyKeyIndex = "idempotency_key_unique"
	userEmailIndex      = "user_email_unique"
)

// duplicateKeyCode is the server error code for a unique index violation.
const duplicateKeyCode = 11000

// isDuplicateOn reports whether err is a duplicate-key error raised by the named index.
// The server names the index in the message ("... index: <name> dup key: ...").
func isDuplicateOn(err error, index string) bool {
	var se mongo.ServerError
	if !errors.As(err, &se) {
		return false
	}
	return se.HasErrorCodeWithMessage(duplicateKeyCode, "index: "+index+" ")
}

// EnsureMongoIndexes creates the unique indexes the Mongo repositories depend on for
// duplicate detection. CreateMany is a no-op for indexes that already exist.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		branchCollection: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetName(branchCodeIndex).SetUnique(true)},
		},
		counterCollection: {
			{
				Keys:    bson.D{{Key: "branch_id", Value: 1}, {Key: "entity", Value: 1}, {Key: "field", Value: 1}},
				Options: options.Index().SetName(counterKeyIndex).SetUnique(true),
			},
		},
		bookingCollection: {
			{Keys: bson.D{{Key: "lr_number", Value: 1}}, Options: options.Index().SetName(lrNumberIndex).SetUnique(true)},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
			{Keys: bson.D{{Key: "from_branch_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "to_branch_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		transactionCollection: {
			{Keys: bson.D{{Key: "idempotency_key", Value: 1}}, Options: options.Index().SetName(idempotencyKeyIndex).SetUnique(true).SetSparse(true)},
			{Keys: bson.D{{Key: "branch_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		userCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName(userEmailIndex).SetUnique(true)},
		},
	}

	for name, specs := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, specs); err != nil {
			return err
		}
	}
	return nil
}
