package repository

import (
	"context"

	"parcelbook/models"
)

// ProfileRepository stores the company letterhead used on receipts.
type ProfileRepository interface {
	SaveProfile(ctx context.Context, profile *models.CompanyProfile) error
	GetProfile(ctx context.Context) (*models.CompanyProfile, error)
}
