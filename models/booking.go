package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentPaid  PaymentType = "Paid"
	PaymentToPay PaymentType = "To Pay"
)

func (p PaymentType) Valid() bool {
	return p == PaymentPaid || p == PaymentToPay
}

type BookingStatus string

const (
	StatusBooked    BookingStatus = "Booked"
	StatusIncoming  BookingStatus = "Incoming"
	StatusInTransit BookingStatus = "In Transit"
	StatusPending   BookingStatus = "Pending"
	StatusArrived   BookingStatus = "Arrived"
	StatusDelivered BookingStatus = "Delivered"
	StatusCancelled BookingStatus = "Cancelled"
)

// AllStatuses lists statuses in lifecycle order.
var AllStatuses = []BookingStatus{
	StatusBooked, StatusIncoming, StatusInTransit, StatusPending,
	StatusArrived, StatusDelivered, StatusCancelled,
}

func (s BookingStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Contact is the sender or receiver snapshot stored on the booking.
type Contact struct {
	Name    string  `json:"name" bson:"name"`
	Mobile  string  `json:"mobile" bson:"mobile"`
	Address string  `json:"address,omitempty" bson:"address,omitempty"`
	GSTIN   *string `json:"gstin,omitempty" bson:"gstin,omitempty"`
}

type ParcelItem struct {
	Quantity int             `json:"quantity" bson:"quantity"`
	ItemType string          `json:"item_type" bson:"item_type"`
	WeightKG decimal.Decimal `json:"weight_kg" bson:"weight_kg"`
	Rate     decimal.Decimal `json:"rate" bson:"rate"`
	Amount   decimal.Decimal `json:"amount" bson:"amount"`
}

type Costs struct {
	Freight  decimal.Decimal `json:"freight" bson:"freight"`
	Handling decimal.Decimal `json:"handling" bson:"handling"`
	Hamali   decimal.Decimal `json:"hamali" bson:"hamali"`
	Total    decimal.Decimal `json:"total" bson:"total"`
}

// DeliveryInfo is filled in when the parcel is handed over at the destination.
type DeliveryInfo struct {
	CollectedByName   string     `json:"collected_by_name,omitempty" bson:"collected_by_name,omitempty"`
	CollectedByMobile string     `json:"collected_by_mobile,omitempty" bson:"collected_by_mobile,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty" bson:"delivered_at,omitempty"`
}

type RemarkEdit struct {
	Previous string    `json:"previous" bson:"previous"`
	Updated  string    `json:"updated" bson:"updated"`
	EditedBy string    `json:"edited_by" bson:"edited_by"`
	EditedAt time.Time `json:"edited_at" bson:"edited_at"`
}

type Booking struct {
	ID           string        `json:"id" bson:"_id" db:"id"`
	LRNumber     string        `json:"lr_number" bson:"lr_number" db:"lr_number"`
	FromBranchID string        `json:"from_branch_id" bson:"from_branch_id" db:"from_branch_id"`
	ToBranchID   string        `json:"to_branch_id" bson:"to_branch_id" db:"to_branch_id"`
	Sender       Contact       `json:"sender" bson:"sender"`
	Receiver     Contact       `json:"receiver" bson:"receiver"`
	Items        []ParcelItem  `json:"items" bson:"items" db:"items"`
	Costs        Costs         `json:"costs" bson:"costs"`
	PaymentType  PaymentType   `json:"payment_type" bson:"payment_type" db:"payment_type"`
	Status       BookingStatus `json:"status" bson:"status" db:"status"`
	Remarks      string        `json:"remarks,omitempty" bson:"remarks,omitempty" db:"remarks"`
	Delivery     DeliveryInfo  `json:"delivery" bson:"delivery"`
	EditHistory  []RemarkEdit  `json:"edit_history,omitempty" bson:"edit_history,omitempty" db:"edit_history"`
	CreatedBy    string        `json:"created_by" bson:"created_by" db:"created_by"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
	PdfCreatedAt *time.Time    `json:"pdf_created_at,omitempty" bson:"pdf_created_at,omitempty" db:"pdf_created_at"`
	PdfPath      *string       `json:"pdf_path,omitempty" bson:"pdf_path,omitempty" db:"pdf_path"`
}

// Clone returns a deep copy so callers can mutate without aliasing stored slices.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	out := *b
	out.Items = append([]ParcelItem(nil), b.Items...)
	out.EditHistory = append([]RemarkEdit(nil), b.EditHistory...)
	return &out
}

// BookingFilter narrows ListBookings. Zero values are ignored.
type BookingFilter struct {
	BranchID     string // origin OR destination
	FromBranchID string
	ToBranchID   string
	Status       BookingStatus
	PaymentType  PaymentType
	LRNumber     string
	From         *time.Time
	To           *time.Time
	Limit        int
}
