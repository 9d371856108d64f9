package repository

import (
	"context"

	"parcelbook/models"
)

type ReportPermissionRepository interface {
	SaveReportPermission(ctx context.Context, perm *models.ReportPermission) error
	GetReportPermission(ctx context.Context, branchID string) (*models.ReportPermission, error)
	ListReportPermissions(ctx context.Context) ([]*models.ReportPermission, error)
}
