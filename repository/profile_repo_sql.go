package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"parcelbook/models"
)

type SQLProfileRepo struct {
	DB *sql.DB
}

func NewSQLProfileRepo(db *sql.DB) *SQLProfileRepo {
	return &SQLProfileRepo{DB: db}
}

// SaveProfile inserts or updates company details
func (r *SQLProfileRepo) SaveProfile(ctx context.Context, profile *models.CompanyProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	mobileJSON, err := jsonText(profile.Mobile)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO company_profile
		(id, company_name, gstin, address, city, state, pincode, mobile, footnote, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT(id) DO UPDATE SET
			company_name = excluded.company_name, gstin = excluded.gstin, address = excluded.address,
			city = excluded.city, state = excluded.state, pincode = excluded.pincode,
			mobile = excluded.mobile, footnote = excluded.footnote
	`, profile.ID, profile.CompanyName, profile.GSTIN, profile.Address, profile.City, profile.State,
		profile.Pincode, mobileJSON, profile.Footnote, profile.CreatedAt)
	return err
}

// GetProfile fetches the latest company profile
func (r *SQLProfileRepo) GetProfile(ctx context.Context) (*models.CompanyProfile, error) {
	profile := &models.CompanyProfile{}
	var mobileJSON []byte

	err := r.DB.QueryRowContext(ctx, `
		SELECT id, company_name, address, city, state, pincode, gstin, footnote, mobile, created_at
		FROM company_profile
		ORDER BY created_at DESC LIMIT 1
	`).Scan(&profile.ID, &profile.CompanyName, &profile.Address, &profile.City, &profile.State,
		&profile.Pincode, &profile.GSTIN, &profile.Footnote, &mobileJSON, &profile.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if len(mobileJSON) > 0 {
		if err := json.Unmarshal(mobileJSON, &profile.Mobile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}
