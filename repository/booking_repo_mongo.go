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

type MongoBookingRepo struct {
	DB *mongo.Database
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{DB: db}
}

func (r *MongoBookingRepo) col() *mongo.Collection {
	return r.DB.Collection(bookingCollection)
}

// ------------------------ Create / Update Booking ------------------------

// CreateBooking inserts the booking with sender, receiver and items embedded.
func (r *MongoBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	_, err := r.col().InsertOne(ctx, booking)
	if isDuplicateOn(err, lrNumberIndex) {
		return ErrDuplicateLRNumber
	}
	return err
}

func (r *MongoBookingRepo) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	now := time.Now().UTC()
	booking.UpdatedAt = &now

	_, err := r.col().UpdateByID(ctx, booking.ID, bson.M{"$set": bson.M{
		"to_branch_id": booking.ToBranchID,
		"sender":       booking.Sender,
		"receiver":     booking.Receiver,
		"items":        booking.Items,
		"costs":        booking.Costs,
		"payment_type": booking.PaymentType,
		"status":       booking.Status,
		"remarks":      booking.Remarks,
		"delivery":     booking.Delivery,
		"edit_history": booking.EditHistory,
		"updated_at":   now,
	}})
	return err
}

func (r *MongoBookingRepo) MarkStaleBookings(ctx context.Context, from, to models.BookingStatus, cutoff time.Time) (int64, error) {
	res, err := r.col().UpdateMany(ctx,
		bson.M{"status": from, "created_at": bson.M{"$lt": cutoff.UTC()}},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// ------------------------ Get Bookings ------------------------

func (r *MongoBookingRepo) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	var b models.Booking
	err := r.col().FindOne(ctx, filter).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *MongoBookingRepo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoBookingRepo) GetBookingByLR(ctx context.Context, lrNumber string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"lr_number": lrNumber})
}

func bookingFilterDoc(filter models.BookingFilter) bson.M {
	doc := bson.M{}
	if filter.BranchID != "" {
		doc["$or"] = bson.A{
			bson.M{"from_branch_id": filter.BranchID},
			bson.M{"to_branch_id": filter.BranchID},
		}
	}
	if filter.FromBranchID != "" {
		doc["from_branch_id"] = filter.FromBranchID
	}
	if filter.ToBranchID != "" {
		doc["to_branch_id"] = filter.ToBranchID
	}
	if filter.Status != "" {
		doc["status"] = filter.Status
	}
	if filter.PaymentType != "" {
		doc["payment_type"] = filter.PaymentType
	}
	if filter.LRNumber != "" {
		doc["lr_number"] = filter.LRNumber
	}
	if created := timeRange(filter.From, filter.To); created != nil {
		doc["created_at"] = created
	}
	return doc
}

func timeRange(from, to *time.Time) bson.M {
	if from == nil && to == nil {
		return nil
	}
	r := bson.M{}
	if from != nil {
		r["$gte"] = from.UTC()
	}
	if to != nil {
		r["$lte"] = to.UTC()
	}
	return r
}

func (r *MongoBookingRepo) ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.col().Find(ctx, bookingFilterDoc(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.Booking{}
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, cur.Err()
}

// ------------------------ PDF Helpers ------------------------

func (r *MongoBookingRepo) UpdatePDFInfo(ctx context.Context, id string, path string, createdAt time.Time) error {
	_, err := r.col().UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"pdf_path":       path,
		"pdf_created_at": createdAt.UTC(),
	}})
	return err
}
