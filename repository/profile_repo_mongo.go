package repository

import (
	"context"
	"errors"
	"time"

	"parcelbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProfileRepo struct {
	DB *mongo.Database
}

func NewMongoProfileRepo(db *mongo.Database) *MongoProfileRepo {
	return &MongoProfileRepo{DB: db}
}

func (r *MongoProfileRepo) SaveProfile(ctx context.Context, profile *models.CompanyProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	_, err := r.DB.Collection(profileCollection).
		ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile, options.Replace().SetUpsert(true))
	return err
}

func (r *MongoProfileRepo) GetProfile(ctx context.Context) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := r.DB.Collection(profileCollection).FindOne(ctx, bson.M{}, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
