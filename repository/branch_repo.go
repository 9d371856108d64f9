package repository

import (
	"context"

	"parcelbook/models"
)

// BranchRepository is the branch registry. Single-record getters return (nil, nil) when missing.
type BranchRepository interface {
	CreateBranch(ctx context.Context, branch *models.Branch) error
	UpdateBranch(ctx context.Context, branch *models.Branch) error
	GetBranch(ctx context.Context, id string) (*models.Branch, error)
	GetBranchByCode(ctx context.Context, code string) (*models.Branch, error)
	ListBranches(ctx context.Context, activeOnly bool) ([]*models.Branch, error)
}
