package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"parcelbook/models"
	"parcelbook/reports"
	"parcelbook/repository"

	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	Service     *reports.Service
	Permissions repository.ReportPermissionRepository
	Branches    repository.BranchRepository
	Location    *time.Location
	Now         func() time.Time
}

type reportRequest struct {
	Type     models.ReportType
	BranchID string
	Period   reports.Period
}

// resolve checks the report type, the caller's permission and the period. It writes the
// error response itself and returns false when the request cannot proceed.
func (h *ReportHandler) resolve(w http.ResponseWriter, r *http.Request) (reportRequest, bool) {
	req := reportRequest{Type: models.ReportType(chi.URLParam(r, "type"))}
	if !req.Type.Valid() {
		fail(w, http.StatusNotFound, "Unknown report "+string(req.Type))
		return req, false
	}

	actor := actorFrom(r)
	q := r.URL.Query()
	if actor.IsSuperAdmin() {
		req.BranchID = q.Get("branch_id")
	} else {
		req.BranchID = actor.BranchID
		perm, err := h.Permissions.GetReportPermission(r.Context(), actor.BranchID)
		if err != nil {
			writeError(w, err)
			return req, false
		}
		if !perm.Allows(req.Type) {
			fail(w, http.StatusForbidden, "Report "+string(req.Type)+" is not enabled for this branch")
			return req, false
		}
	}

	p, err := reports.ParsePeriod(q.Get("period"), q.Get("from"), q.Get("to"), h.Now(), h.Location)
	if err != nil {
		writeError(w, err)
		return req, false
	}
	req.Period = p
	return req, true
}

func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	req, proceed := h.resolve(w, r)
	if !proceed {
		return
	}

	var (
		data interface{}
		err  error
	)
	switch req.Type {
	case models.ReportBookings:
		data, err = h.Service.BookingsReport(r.Context(), req.BranchID, req.Period)
	case models.ReportDeliveries:
		data, err = h.Service.DeliveriesReport(r.Context(), req.BranchID, req.Period)
	case models.ReportLedger:
		data, err = h.Service.LedgerReport(r.Context(), req.BranchID, req.Period)
	case models.ReportSummary:
		data, err = h.Service.SummaryReport(r.Context(), req.BranchID, req.Period)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Report generated", data)
}

// ExportReport streams the report as an XLSX workbook. The summary has no export.
func (h *ReportHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	req, proceed := h.resolve(w, r)
	if !proceed {
		return
	}
	if req.Type == models.ReportSummary {
		fail(w, http.StatusBadRequest, "The summary report has no export")
		return
	}

	names, err := h.branchNames(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	switch req.Type {
	case models.ReportBookings:
		var rows []*models.Booking
		if rows, err = h.Service.BookingsReport(r.Context(), req.BranchID, req.Period); err == nil {
			err = reports.WriteBookingsXLSX(&buf, rows, names, h.Location)
		}
	case models.ReportDeliveries:
		var rows []*models.Booking
		if rows, err = h.Service.DeliveriesReport(r.Context(), req.BranchID, req.Period); err == nil {
			err = reports.WriteDeliveriesXLSX(&buf, rows, names, h.Location)
		}
	case models.ReportLedger:
		var rows []*models.Transaction
		if rows, err = h.Service.LedgerReport(r.Context(), req.BranchID, req.Period); err == nil {
			err = reports.WriteLedgerXLSX(&buf, rows, names, h.Location)
		}
	}
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", req.Type, req.Period.From.In(h.Location).Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *ReportHandler) branchNames(r *http.Request) (reports.BranchNames, error) {
	branches, err := h.Branches.ListBranches(r.Context(), false)
	if err != nil {
		return nil, err
	}
	names := make(reports.BranchNames, len(branches))
	for _, b := range branches {
		names[b.ID] = b.Name
	}
	return names, nil
}
