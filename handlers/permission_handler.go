package handlers

import (
	"net/http"
	"time"

	"parcelbook/models"
	"parcelbook/repository"

	"github.com/go-chi/chi/v5"
)

type PermissionHandler struct {
	Repo     repository.ReportPermissionRepository
	Branches repository.BranchRepository
}

func (h *PermissionHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.Repo.ListReportPermissions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Report permissions fetched", perms)
}

// SavePermission replaces the set of reports a branch may view.
func (h *PermissionHandler) SavePermission(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "branchId")
	branch, err := h.Branches.GetBranch(r.Context(), branchID)
	if err != nil {
		writeError(w, err)
		return
	}
	if branch == nil {
		fail(w, http.StatusNotFound, "Branch not found")
		return
	}

	var req struct {
		Reports []models.ReportType `json:"reports"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	seen := make(map[models.ReportType]bool)
	reportTypes := []models.ReportType{}
	for _, t := range req.Reports {
		if !t.Valid() {
			fail(w, http.StatusBadRequest, "Unknown report "+string(t))
			return
		}
		if !seen[t] {
			seen[t] = true
			reportTypes = append(reportTypes, t)
		}
	}

	perm := &models.ReportPermission{BranchID: branchID, Reports: reportTypes, UpdatedAt: time.Now().UTC()}
	if err := h.Repo.SaveReportPermission(r.Context(), perm); err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Report permissions saved", perm)
}
