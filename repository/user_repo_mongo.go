package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"parcelbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepo struct {
	DB *mongo.Database
}

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) col() *mongo.Collection {
	return r.DB.Collection(userCollection)
}

func (r *MongoUserRepo) CreateUser(ctx context.Context, user *models.AppUser) error {
	user.Email = strings.ToLower(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.col().InsertOne(ctx, user)
	if isDuplicateOn(err, userEmailIndex) {
		return ErrEmailExists
	}
	return err
}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.col().FindOne(ctx, filter).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *MongoUserRepo) GetUserByID(ctx context.Context, id string) (*models.AppUser, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.col().CountDocuments(ctx, bson.M{})
}
