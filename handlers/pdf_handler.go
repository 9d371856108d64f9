package handlers

import (
	"context"
	"net/http"
	"time"

	"parcelbook/booking"
	"parcelbook/logger"
	"parcelbook/models"
	"parcelbook/repository"
	"parcelbook/utils"

	"github.com/go-chi/chi/v5"
)

// ReceiptRenderer produces the PDF bytes for a booking. utils.GenerateReceiptPDF is the production renderer.
type ReceiptRenderer func(ctx context.Context, repo *repository.PDFRepository, bookingID string, loc *time.Location) ([]byte, *models.Booking, error)

type PDFHandler struct {
	Bookings *booking.Service
	Repo     *repository.PDFRepository
	Store    utils.ReceiptStore
	Render   ReceiptRenderer
	Location *time.Location
}

type receiptResponse struct {
	LRNumber  string    `json:"lr_number"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
}

// ReceiptPDF renders the LR receipt, stores it and records its location on the booking.
// The previously stored receipt, if any, is removed once the new one is recorded.
func (h *PDFHandler) ReceiptPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.Bookings.GetBooking(r.Context(), id, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, b, err := h.Render(r.Context(), h.Repo, id, h.Location)
	if err != nil {
		logger.Error("render receipt for "+existing.LRNumber, err)
		fail(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	if b == nil || len(pdf) == 0 {
		fail(w, http.StatusNotFound, "Booking not found")
		return
	}

	createdAt := time.Now().UTC()
	location, err := h.Store.Save(r.Context(), utils.ReceiptFileName(b.LRNumber, createdAt.In(h.Location)), pdf)
	if err != nil {
		logger.Error("store receipt for "+b.LRNumber, err)
		fail(w, http.StatusInternalServerError, "Failed to save PDF")
		return
	}

	if err := h.Repo.Bookings.UpdatePDFInfo(r.Context(), b.ID, location, createdAt); err != nil {
		logger.Error("record receipt for "+b.LRNumber, err)
		fail(w, http.StatusInternalServerError, "Failed to record PDF")
		return
	}
	if existing.PdfPath != nil && *existing.PdfPath != "" && *existing.PdfPath != location {
		if err := h.Store.Delete(r.Context(), *existing.PdfPath); err != nil {
			logger.Warn("could not delete old receipt " + *existing.PdfPath + ": " + err.Error())
		}
	}

	ok(w, http.StatusOK, "Receipt generated", receiptResponse{LRNumber: b.LRNumber, File: location, CreatedAt: createdAt})
}
