package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"parcelbook/models"
)

func TestValidateTransition(t *testing.T) {
	allowed := [][2]models.BookingStatus{
		{models.StatusBooked, models.StatusInTransit},
		{models.StatusBooked, models.StatusIncoming},
		{models.StatusIncoming, models.StatusPending},
		{models.StatusPending, models.StatusArrived},
		{models.StatusArrived, models.StatusDelivered},
		{models.StatusInTransit, models.StatusCancelled},
		{models.StatusDelivered, models.StatusDelivered},
	}
	for _, tr := range allowed {
		assert.NoError(t, ValidateTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]models.BookingStatus{
		{models.StatusDelivered, models.StatusBooked},
		{models.StatusCancelled, models.StatusArrived},
		{models.StatusBooked, models.StatusDelivered},
		{models.StatusArrived, models.StatusBooked},
	}
	for _, tr := range rejected {
		assert.ErrorIs(t, ValidateTransition(tr[0], tr[1]), ErrInvalidTransition, "%s -> %s", tr[0], tr[1])
	}

	assert.ErrorIs(t, ValidateTransition(models.StatusBooked, "Lost"), ErrValidation)
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	for _, s := range models.AllStatuses {
		assert.Equal(t, IsTerminal(s), len(transitions[s]) == 0, string(s))
	}
}
