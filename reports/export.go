package reports

import (
	"io"
	"time"

	"parcelbook/models"

	"github.com/xuri/excelize/v2"
)

const dateTimeLayout = "02-01-2006 15:04"

// BranchNames maps branch id to display name for export columns. Unknown ids print as-is.
type BranchNames map[string]string

func (n BranchNames) name(id string) string {
	if v, ok := n[id]; ok {
		return v
	}
	return id
}

// WriteBookingsXLSX writes one row per booking.
func WriteBookingsXLSX(w io.Writer, bookings []*models.Booking, names BranchNames, loc *time.Location) error {
	header := []interface{}{
		"LR Number", "Date", "From", "To", "Sender", "Sender Mobile", "Receiver", "Receiver Mobile",
		"Pieces", "Freight", "Handling", "Hamali", "Total", "Payment", "Status",
	}
	rows := make([][]interface{}, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []interface{}{
			b.LRNumber, b.CreatedAt.In(loc).Format(dateTimeLayout),
			names.name(b.FromBranchID), names.name(b.ToBranchID),
			b.Sender.Name, b.Sender.Mobile, b.Receiver.Name, b.Receiver.Mobile,
			itemCount(b), b.Costs.Freight.InexactFloat64(), b.Costs.Handling.InexactFloat64(),
			b.Costs.Hamali.InexactFloat64(), b.Costs.Total.InexactFloat64(),
			string(b.PaymentType), string(b.Status),
		})
	}
	return writeSheet(w, "Bookings", header, rows)
}

// WriteDeliveriesXLSX writes one row per delivered booking with the collection details.
func WriteDeliveriesXLSX(w io.Writer, bookings []*models.Booking, names BranchNames, loc *time.Location) error {
	header := []interface{}{
		"LR Number", "From", "Receiver", "Collected By", "Collector Mobile", "Delivered At", "Payment", "Total",
	}
	rows := make([][]interface{}, 0, len(bookings))
	for _, b := range bookings {
		delivered := ""
		if b.Delivery.DeliveredAt != nil {
			delivered = b.Delivery.DeliveredAt.In(loc).Format(dateTimeLayout)
		}
		rows = append(rows, []interface{}{
			b.LRNumber, names.name(b.FromBranchID), b.Receiver.Name,
			b.Delivery.CollectedByName, b.Delivery.CollectedByMobile, delivered,
			string(b.PaymentType), b.Costs.Total.InexactFloat64(),
		})
	}
	return writeSheet(w, "Deliveries", header, rows)
}

func WriteLedgerXLSX(w io.Writer, txs []*models.Transaction, names BranchNames, loc *time.Location) error {
	header := []interface{}{"Date", "Branch", "Type", "Amount", "Description"}
	rows := make([][]interface{}, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []interface{}{
			tx.CreatedAt.In(loc).Format(dateTimeLayout), names.name(tx.BranchID),
			string(tx.Type), tx.Amount.InexactFloat64(), tx.Description,
		})
	}
	return writeSheet(w, "Ledger", header, rows)
}

func itemCount(b *models.Booking) int {
	n := 0
	for _, it := range b.Items {
		n += it.Quantity
	}
	return n
}

func writeSheet(w io.Writer, sheet string, header []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}
