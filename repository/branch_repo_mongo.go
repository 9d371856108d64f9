package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"parcelbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoBranchRepo struct {
	DB *mongo.Database
}

func NewMongoBranchRepo(db *mongo.Database) *MongoBranchRepo {
	return &MongoBranchRepo{DB: db}
}

func (r *MongoBranchRepo) col() *mongo.Collection {
	return r.DB.Collection(branchCollection)
}

// CreateBranch stores codes upper-cased so lookups by code are case-insensitive.
func (r *MongoBranchRepo) CreateBranch(ctx context.Context, branch *models.Branch) error {
	branch.Code = strings.ToUpper(branch.Code)
	if branch.CreatedAt.IsZero() {
		branch.CreatedAt = time.Now().UTC()
	}

	_, err := r.col().InsertOne(ctx, branch)
	if isDuplicateOn(err, branchCodeIndex) {
		return ErrDuplicateBranchCode
	}
	return err
}

func (r *MongoBranchRepo) UpdateBranch(ctx context.Context, branch *models.Branch) error {
	branch.Code = strings.ToUpper(branch.Code)
	now := time.Now().UTC()
	branch.UpdatedAt = &now

	_, err := r.col().UpdateByID(ctx, branch.ID, bson.M{"$set": bson.M{
		"name":       branch.Name,
		"code":       branch.Code,
		"address":    branch.Address,
		"phone":      branch.Phone,
		"is_active":  branch.IsActive,
		"updated_at": now,
	}})
	if isDuplicateOn(err, branchCodeIndex) {
		return ErrDuplicateBranchCode
	}
	return err
}

func (r *MongoBranchRepo) findOne(ctx context.Context, filter bson.M) (*models.Branch, error) {
	var b models.Branch
	err := r.col().FindOne(ctx, filter).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *MongoBranchRepo) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoBranchRepo) GetBranchByCode(ctx context.Context, code string) (*models.Branch, error) {
	return r.findOne(ctx, bson.M{"code": strings.ToUpper(code)})
}

func (r *MongoBranchRepo) ListBranches(ctx context.Context, activeOnly bool) ([]*models.Branch, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cur, err := r.col().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.Branch{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
