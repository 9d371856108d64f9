package handlers

import (
	"net/http"
	"strconv"
	"time"

	"parcelbook/booking"
	"parcelbook/logger"
	"parcelbook/models"

	"github.com/go-chi/chi/v5"
)

type BookingHandler struct {
	Service  *booking.Service
	Location *time.Location
}

// CreateBooking stores a booking. If the ledger post fails after the booking was saved the
// booking is still returned with 201 and the failure is logged for reconciliation.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var in booking.CreateBookingInput
	if !decodeJSON(w, r, &in) {
		return
	}

	b, err := h.Service.CreateBooking(r.Context(), in, actorFrom(r))
	if err != nil && b == nil {
		writeError(w, err)
		return
	}
	if err != nil {
		logger.Error("ledger post for "+b.LRNumber, err)
	}
	ok(w, http.StatusCreated, "Booking created", b)
}

// ListBookings accepts status, payment_type, from_branch_id, to_branch_id, lr_number,
// from and to (YYYY-MM-DD, inclusive) and limit query parameters.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	filter, msg := h.bookingFilter(r)
	if msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	bookings, err := h.Service.ListBookings(r.Context(), filter, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Bookings fetched", bookings)
}

func (h *BookingHandler) bookingFilter(r *http.Request) (models.BookingFilter, string) {
	q := r.URL.Query()
	f := models.BookingFilter{
		FromBranchID: q.Get("from_branch_id"),
		ToBranchID:   q.Get("to_branch_id"),
		Status:       models.BookingStatus(q.Get("status")),
		PaymentType:  models.PaymentType(q.Get("payment_type")),
		LRNumber:     q.Get("lr_number"),
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, "Unknown status " + string(f.Status)
	}
	if f.PaymentType != "" && !f.PaymentType.Valid() {
		return f, "Unknown payment type " + string(f.PaymentType)
	}
	if v := q.Get("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.Location)
		if err != nil {
			return f, "from must be YYYY-MM-DD"
		}
		f.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.Location)
		if err != nil {
			return f, "to must be YYYY-MM-DD"
		}
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		f.To = &end
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, "limit must be a non-negative integer"
		}
		f.Limit = n
	}
	return f, ""
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Service.GetBooking(r.Context(), chi.URLParam(r, "id"), actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Booking fetched", b)
}

// GetBookingByLR serves /lr/{branch}/{seq}, the two halves of an LR number such as HR/0007.
func (h *BookingHandler) GetBookingByLR(w http.ResponseWriter, r *http.Request) {
	lr := chi.URLParam(r, "branch") + "/" + chi.URLParam(r, "seq")
	b, err := h.Service.GetBookingByLR(r.Context(), lr, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Booking fetched", b)
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in booking.StatusUpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}

	b, err := h.Service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), in, actorFrom(r))
	if err != nil && b == nil {
		writeError(w, err)
		return
	}
	if err != nil {
		logger.Error("ledger post for "+b.LRNumber, err)
	}
	ok(w, http.StatusOK, "Status updated", b)
}

func (h *BookingHandler) EditRemarks(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Remarks string `json:"remarks"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.Service.EditRemarks(r.Context(), chi.URLParam(r, "id"), req.Remarks, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Remarks updated", b)
}
