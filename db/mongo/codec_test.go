package mongo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"parcelbook/models"
)

func TestDecimalStoredAsDecimal128(t *testing.T) {
	reg := NewRegistry()
	costs := models.Costs{
		Freight:  decimal.RequireFromString("300.00"),
		Handling: decimal.RequireFromString("20.50"),
		Hamali:   decimal.NewFromInt(10),
		Total:    decimal.RequireFromString("330.50"),
	}

	data, err := bson.MarshalWithRegistry(reg, costs)
	require.NoError(t, err)

	raw := bson.Raw(data)
	assert.Equal(t, bsontype.Decimal128, raw.Lookup("total").Type)

	var decoded models.Costs
	require.NoError(t, bson.UnmarshalWithRegistry(reg, data, &decoded))
	assert.True(t, costs.Total.Equal(decoded.Total))
	assert.True(t, costs.Handling.Equal(decoded.Handling))
}

func TestDecimalDecodesLegacyValues(t *testing.T) {
	reg := NewRegistry()
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"double", 12.5, "12.5"},
		{"int32", int32(7), "7"},
		{"int64", int64(1200), "1200"},
		{"string", "99.95", "99.95"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := bson.Marshal(bson.M{"amount": tc.value})
			require.NoError(t, err)

			var tx models.Transaction
			require.NoError(t, bson.UnmarshalWithRegistry(reg, data, &tx))
			assert.True(t, decimal.RequireFromString(tc.want).Equal(tx.Amount), "got %s", tx.Amount)
		})
	}

	data, err := bson.Marshal(bson.M{"amount": true})
	require.NoError(t, err)
	var tx models.Transaction
	assert.Error(t, bson.UnmarshalWithRegistry(reg, data, &tx))
}
