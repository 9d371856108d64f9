package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelbook/booking"
	"parcelbook/logger"
	"parcelbook/middleware"
	"parcelbook/models"
	"parcelbook/reports"
	"parcelbook/repository"
)

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func ok(w http.ResponseWriter, status int, msg string, data interface{}) {
	writeJSON(w, status, ApiResponse{Success: true, Message: msg, Data: data})
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ApiResponse{Success: false, Message: msg})
}

// writeError maps domain and storage errors to HTTP statuses. Server-side failures are logged
// and reported without their cause.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case booking.IsNotFound(err):
		fail(w, http.StatusNotFound, err.Error())
	case booking.IsForbidden(err):
		fail(w, http.StatusForbidden, err.Error())
	case booking.IsClientError(err), errors.Is(err, reports.ErrInvalidPeriod):
		fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrDuplicateBranchCode), errors.Is(err, repository.ErrEmailExists):
		fail(w, http.StatusConflict, err.Error())
	default:
		logger.Error("request failed", err)
		fail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}

// actorFrom builds the service actor from the token claims set by AuthMiddleware.
func actorFrom(r *http.Request) booking.Actor {
	claims, found := middleware.ClaimsFromContext(r.Context())
	if !found {
		return booking.Actor{}
	}
	return booking.Actor{UserID: claims.UserID, Role: models.Role(claims.Role), BranchID: claims.BranchID}
}
