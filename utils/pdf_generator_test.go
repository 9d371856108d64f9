package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelbook/models"
)

func TestRenderReceiptHTML(t *testing.T) {
	gstin := "29abcde1234f1z5"
	data := &models.ReceiptPDFData{
		Company: &models.CompanyProfile{
			CompanyName: "Swift Parcels",
			City:        "Hyderabad",
			Mobile:      []models.MobileEntry{{Number: "9000000000", Label: "Office"}, {Number: "9111111111"}},
		},
		Booking: &models.Booking{
			LRNumber:     "HR/0007",
			FromBranchID: "b-hr",
			ToBranchID:   "b-dl",
			Sender:       models.Contact{Name: "Ravi", Mobile: "9000000001", GSTIN: &gstin},
			Receiver:     models.Contact{Name: "Meena <M>", Mobile: "9000000002"},
			Items: []models.ParcelItem{
				{Quantity: 2, ItemType: "Carton", Rate: decimal.NewFromInt(150), Amount: decimal.NewFromInt(300)},
			},
			Costs:       models.Costs{Freight: decimal.NewFromInt(300), Total: decimal.RequireFromString("310.50")},
			PaymentType: models.PaymentToPay,
			CreatedAt:   time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC),
		},
		ToBranch: &models.Branch{Name: "Delhi", Code: "DL"},
	}

	out, err := RenderReceiptHTML(data, time.FixedZone("IST", 5*3600+1800))
	require.NoError(t, err)
	html := string(out)

	assert.Equal(t, 3, strings.Count(html, "class='receipt-copy'"))
	assert.Contains(t, html, "Sender Copy")
	assert.Contains(t, html, "Office Copy")
	assert.Contains(t, html, "HR/0007")
	assert.Contains(t, html, "11-Mar-2026", "date is shown in local time")
	assert.Contains(t, html, "9000000000(Office), 9111111111")
	assert.Contains(t, html, "310.50")
	assert.Contains(t, html, "Three Hundred Ten Rupees and Fifty Paise Only")
	assert.Contains(t, html, "Delhi (DL)")
	assert.Contains(t, html, "b-hr", "missing branch falls back to the id")
	assert.Contains(t, html, "Meena &lt;M&gt;")
}

func TestReceiptFileName(t *testing.T) {
	at := time.Date(2026, time.March, 10, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "HR-0007_20260310150405.pdf", ReceiptFileName("HR/0007", at))
}
