package models

import "time"

type ReportType string

const (
	ReportBookings   ReportType = "bookings"
	ReportDeliveries ReportType = "deliveries"
	ReportLedger     ReportType = "ledger"
	ReportSummary    ReportType = "summary"
)

var AllReportTypes = []ReportType{ReportBookings, ReportDeliveries, ReportLedger, ReportSummary}

func (r ReportType) Valid() bool {
	for _, t := range AllReportTypes {
		if r == t {
			return true
		}
	}
	return false
}

// ReportPermission lists the report types a branch's staff may view.
type ReportPermission struct {
	BranchID  string       `json:"branch_id" bson:"_id" db:"branch_id"`
	Reports   []ReportType `json:"reports" bson:"reports" db:"reports"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at" db:"updated_at"`
}

func (p *ReportPermission) Allows(t ReportType) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Reports {
		if r == t {
			return true
		}
	}
	return false
}
