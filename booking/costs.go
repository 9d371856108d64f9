package booking

import (
	"fmt"

	"parcelbook/models"

	"github.com/shopspring/decimal"
)

// ComputeCosts fills each item's Amount (quantity x rate) and returns the breakdown:
// freight is the sum of item amounts, total adds handling and hamali.
func ComputeCosts(items []models.ParcelItem, handling, hamali decimal.Decimal) ([]models.ParcelItem, models.Costs, error) {
	if len(items) == 0 {
		return nil, models.Costs{}, &ValidationError{Field: "items", Reason: "at least one item is required"}
	}
	if handling.IsNegative() {
		return nil, models.Costs{}, &ValidationError{Field: "handling", Reason: "must not be negative"}
	}
	if hamali.IsNegative() {
		return nil, models.Costs{}, &ValidationError{Field: "hamali", Reason: "must not be negative"}
	}

	out := make([]models.ParcelItem, len(items))
	freight := decimal.Zero
	for i, item := range items {
		field := fmt.Sprintf("items[%d]", i)
		switch {
		case item.Quantity <= 0:
			return nil, models.Costs{}, &ValidationError{Field: field + ".quantity", Reason: "must be positive"}
		case item.Rate.IsNegative():
			return nil, models.Costs{}, &ValidationError{Field: field + ".rate", Reason: "must not be negative"}
		case item.WeightKG.IsNegative():
			return nil, models.Costs{}, &ValidationError{Field: field + ".weight_kg", Reason: "must not be negative"}
		}
		item.Amount = item.Rate.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		freight = freight.Add(item.Amount)
		out[i] = item
	}

	return out, models.Costs{
		Freight:  freight,
		Handling: handling,
		Hamali:   hamali,
		Total:    freight.Add(handling).Add(hamali),
	}, nil
}
