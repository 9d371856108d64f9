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

type MongoPermissionRepo struct {
	DB *mongo.Database
}

func NewMongoPermissionRepo(db *mongo.Database) *MongoPermissionRepo {
	return &MongoPermissionRepo{DB: db}
}

func (r *MongoPermissionRepo) col() *mongo.Collection {
	return r.DB.Collection(permissionCollection)
}

func (r *MongoPermissionRepo) SaveReportPermission(ctx context.Context, perm *models.ReportPermission) error {
	perm.UpdatedAt = time.Now().UTC()
	_, err := r.col().ReplaceOne(ctx, bson.M{"_id": perm.BranchID}, perm, options.Replace().SetUpsert(true))
	return err
}

func (r *MongoPermissionRepo) GetReportPermission(ctx context.Context, branchID string) (*models.ReportPermission, error) {
	var p models.ReportPermission
	err := r.col().FindOne(ctx, bson.M{"_id": branchID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoPermissionRepo) ListReportPermissions(ctx context.Context) ([]*models.ReportPermission, error) {
	cur, err := r.col().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.ReportPermission{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
