package booking

import "parcelbook/models"

// transitions lists the allowed next statuses in strict mode. Delivered and Cancelled
// are terminal. Re-applying the current status is always allowed.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusBooked: {
		models.StatusIncoming, models.StatusInTransit, models.StatusPending,
		models.StatusArrived, models.StatusCancelled,
	},
	models.StatusIncoming: {
		models.StatusInTransit, models.StatusPending, models.StatusArrived, models.StatusCancelled,
	},
	models.StatusInTransit: {models.StatusPending, models.StatusArrived, models.StatusCancelled},
	models.StatusPending:   {models.StatusInTransit, models.StatusArrived, models.StatusCancelled},
	models.StatusArrived:   {models.StatusDelivered, models.StatusCancelled},
	models.StatusDelivered: nil,
	models.StatusCancelled: nil,
}

// ValidateTransition checks from -> to against the strict transition table.
func ValidateTransition(from, to models.BookingStatus) error {
	if !to.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status " + string(to)}
	}
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return &TransitionError{From: from, To: to}
}

// IsTerminal reports whether no strict-mode transition leaves s.
func IsTerminal(s models.BookingStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}
