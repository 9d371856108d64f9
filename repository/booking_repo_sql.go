package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"parcelbook/models"
)

type SQLBookingRepo struct {
	DB *sql.DB
}

func NewSQLBookingRepo(db *sql.DB) *SQLBookingRepo {
	return &SQLBookingRepo{DB: db}
}

const bookingColumns = `
	id, lr_number, from_branch_id, to_branch_id,
	sender_name, sender_mobile, sender_address, sender_gstin,
	receiver_name, receiver_mobile, receiver_address, receiver_gstin,
	items, freight, handling, hamali, total,
	payment_type, status, remarks,
	collected_by_name, collected_by_mobile, delivered_at,
	edit_history, created_by, created_at, updated_at, pdf_path, pdf_created_at`

// ------------------------ Helper Functions ------------------------

func scanBooking(row interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	var b models.Booking
	var itemsJSON, historyJSON []byte

	err := row.Scan(
		&b.ID, &b.LRNumber, &b.FromBranchID, &b.ToBranchID,
		&b.Sender.Name, &b.Sender.Mobile, &b.Sender.Address, &b.Sender.GSTIN,
		&b.Receiver.Name, &b.Receiver.Mobile, &b.Receiver.Address, &b.Receiver.GSTIN,
		&itemsJSON, &b.Costs.Freight, &b.Costs.Handling, &b.Costs.Hamali, &b.Costs.Total,
		&b.PaymentType, &b.Status, &b.Remarks,
		&b.Delivery.CollectedByName, &b.Delivery.CollectedByMobile, &b.Delivery.DeliveredAt,
		&historyJSON, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt, &b.PdfPath, &b.PdfCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &b.Items); err != nil {
			return nil, err
		}
	}
	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &b.EditHistory); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

// ------------------------ Create / Update Booking ------------------------

func (r *SQLBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	items, err := jsonText(booking.Items)
	if err != nil {
		return err
	}
	history, err := jsonText(booking.EditHistory)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO bookings(
			id, lr_number, from_branch_id, to_branch_id,
			sender_name, sender_mobile, sender_address, sender_gstin,
			receiver_name, receiver_mobile, receiver_address, receiver_gstin,
			items, freight, handling, hamali, total,
			payment_type, status, remarks, edit_history, created_by, created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
		ON CONFLICT(lr_number) DO NOTHING
	`,
		booking.ID, booking.LRNumber, booking.FromBranchID, booking.ToBranchID,
		booking.Sender.Name, booking.Sender.Mobile, booking.Sender.Address, booking.Sender.GSTIN,
		booking.Receiver.Name, booking.Receiver.Mobile, booking.Receiver.Address, booking.Receiver.GSTIN,
		items, booking.Costs.Freight, booking.Costs.Handling, booking.Costs.Hamali, booking.Costs.Total,
		string(booking.PaymentType), string(booking.Status), booking.Remarks, history, booking.CreatedBy, booking.CreatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDuplicateLRNumber
	}
	return nil
}

// UpdateBooking never touches lr_number, from_branch_id or created_at.
func (r *SQLBookingRepo) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	items, err := jsonText(booking.Items)
	if err != nil {
		return err
	}
	history, err := jsonText(booking.EditHistory)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	booking.UpdatedAt = &now

	_, err = r.DB.ExecContext(ctx, `
		UPDATE bookings SET
			to_branch_id=$1,
			sender_name=$2, sender_mobile=$3, sender_address=$4, sender_gstin=$5,
			receiver_name=$6, receiver_mobile=$7, receiver_address=$8, receiver_gstin=$9,
			items=$10, freight=$11, handling=$12, hamali=$13, total=$14,
			payment_type=$15, status=$16, remarks=$17,
			collected_by_name=$18, collected_by_mobile=$19, delivered_at=$20,
			edit_history=$21, updated_at=$22
		WHERE id=$23
	`,
		booking.ToBranchID,
		booking.Sender.Name, booking.Sender.Mobile, booking.Sender.Address, booking.Sender.GSTIN,
		booking.Receiver.Name, booking.Receiver.Mobile, booking.Receiver.Address, booking.Receiver.GSTIN,
		items, booking.Costs.Freight, booking.Costs.Handling, booking.Costs.Hamali, booking.Costs.Total,
		string(booking.PaymentType), string(booking.Status), booking.Remarks,
		booking.Delivery.CollectedByName, booking.Delivery.CollectedByMobile, booking.Delivery.DeliveredAt,
		history, now, booking.ID,
	)
	return err
}

func (r *SQLBookingRepo) MarkStaleBookings(ctx context.Context, from, to models.BookingStatus, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE bookings SET status=$1, updated_at=$2
		WHERE status=$3 AND created_at < $4
	`, string(to), time.Now().UTC(), string(from), cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ------------------------ Get Bookings ------------------------

func (r *SQLBookingRepo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := scanBooking(r.DB.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return b, err
}

func (r *SQLBookingRepo) GetBookingByLR(ctx context.Context, lrNumber string) (*models.Booking, error) {
	b, err := scanBooking(r.DB.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE lr_number=$1`, lrNumber))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return b, err
}

func (r *SQLBookingRepo) ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	var w whereBuilder
	if filter.BranchID != "" {
		w.add("(from_branch_id = %s OR to_branch_id = %s)", filter.BranchID, filter.BranchID)
	}
	if filter.FromBranchID != "" {
		w.add("from_branch_id = %s", filter.FromBranchID)
	}
	if filter.ToBranchID != "" {
		w.add("to_branch_id = %s", filter.ToBranchID)
	}
	if filter.Status != "" {
		w.add("status = %s", string(filter.Status))
	}
	if filter.PaymentType != "" {
		w.add("payment_type = %s", string(filter.PaymentType))
	}
	if filter.LRNumber != "" {
		w.add("lr_number = %s", filter.LRNumber)
	}
	if filter.From != nil {
		w.add("created_at >= %s", filter.From.UTC())
	}
	if filter.To != nil {
		w.add("created_at <= %s", filter.To.UTC())
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings` + w.sql() + ` ORDER BY created_at DESC`
	args := w.args
	if filter.Limit > 0 {
		query += ` LIMIT ` + w.next()
		args = append(args, filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ------------------------ PDF Helpers ------------------------

func (r *SQLBookingRepo) UpdatePDFInfo(ctx context.Context, id string, path string, createdAt time.Time) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE bookings
		SET pdf_path = $1, pdf_created_at = $2
		WHERE id = $3
	`, path, createdAt.UTC(), id)
	return err
}
