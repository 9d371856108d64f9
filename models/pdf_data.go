package models

type ReceiptPDFData struct {
	Company    *CompanyProfile
	Booking    *Booking
	FromBranch *Branch
	ToBranch   *Branch
	Contacts   string // formatted mobile numbers
	Date       string
	TotalWords string
	CopyTitle  string
	ItemCount  int
}
