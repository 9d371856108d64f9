package utils

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"parcelbook/models"
	"parcelbook/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/shopspring/decimal"
)

//go:embed templates/lr_receipt.html
var receiptTemplate string

var receiptTmpl = template.Must(template.New("lr_receipt").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"inc":   func(i int) int { return i + 1 },
}).Parse(receiptTemplate))

var copyTitles = []string{"Sender Copy", "Receiver Copy", "Office Copy"}

// ReceiptFileName turns an LR number into a file name, e.g. HR/0007 -> HR-0007_20260310150405.pdf.
func ReceiptFileName(lrNumber string, at time.Time) string {
	return strings.ReplaceAll(lrNumber, "/", "-") + "_" + at.Format("20060102150405") + ".pdf"
}

// RenderReceiptHTML lays out one copy per title; each copy is kept whole on a page.
func RenderReceiptHTML(data *models.ReceiptPDFData, loc *time.Location) ([]byte, error) {
	if data.Company != nil {
		var nums []string
		for _, m := range data.Company.Mobile {
			if m.Label != "" {
				nums = append(nums, m.Number+"("+m.Label+")")
			} else {
				nums = append(nums, m.Number)
			}
		}
		data.Contacts = strings.Join(nums, ", ")
	}
	data.Date = data.Booking.CreatedAt.In(loc).Format("02-Jan-2006")
	data.TotalWords = AmountInWords(data.Booking.Costs.Total)

	var copies bytes.Buffer
	for _, title := range copyTitles {
		data.CopyTitle = title
		copies.WriteString("<div class='receipt-copy'>")
		if err := receiptTmpl.Execute(&copies, data); err != nil {
			return nil, err
		}
		copies.WriteString("</div>")
	}

	html := `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
@page { size: A4; margin: 20px; }
body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; margin: 0; padding: 0; }
table { width: 100%; border-collapse: collapse; margin-bottom: 6px; }
.items th, .items td { border: 1px solid #444; padding: 3px; }
.costs td:last-child { text-align: right; }
.total td { font-weight: bold; border-top: 1px solid #444; }
.copy { font-weight: bold; text-transform: uppercase; }
.receipt-copy { page-break-inside: avoid; border-bottom: 1px dashed #888; padding: 8px 0; }
</style>
</head>
<body>` + copies.String() + `</body></html>`
	return []byte(html), nil
}

// GenerateReceiptPDF renders the LR receipt for bookingID with headless Chrome.
// It returns (nil, nil, nil) when the booking does not exist.
func GenerateReceiptPDF(ctx context.Context, repo *repository.PDFRepository, bookingID string, loc *time.Location) ([]byte, *models.Booking, error) {
	data, err := repo.GetReceiptData(ctx, bookingID)
	if err != nil || data == nil {
		return nil, nil, err
	}

	html, err := RenderReceiptHTML(data, loc)
	if err != nil {
		return nil, nil, err
	}

	tmpHTML := filepath.Join(os.TempDir(), "receipt_"+data.Booking.ID+".html")
	if err := os.WriteFile(tmpHTML, html, 0o644); err != nil {
		return nil, nil, err
	}
	defer os.Remove(tmpHTML)

	chromeCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()
	chromeCtx, cancelTimeout := context.WithTimeout(chromeCtx, 30*time.Second)
	defer cancelTimeout()

	var pdfBuf []byte
	err = chromedp.Run(chromeCtx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, nil, err
	}
	return pdfBuf, data.Booking, nil
}
