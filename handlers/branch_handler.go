package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"parcelbook/models"
	"parcelbook/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var branchCodePattern = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)

type BranchHandler struct {
	Repo repository.BranchRepository
}

type branchRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (req *branchRequest) normalize() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	switch {
	case req.Name == "":
		return "Branch name is required"
	case !branchCodePattern.MatchString(req.Code):
		return "Branch code must be 1-10 letters or digits"
	}
	return ""
}

// ListBranches returns active branches; super admins may pass ?all=true to include inactive ones.
func (h *BranchHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	activeOnly := !(actorFrom(r).IsSuperAdmin() && r.URL.Query().Get("all") == "true")
	branches, err := h.Repo.ListBranches(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Branches fetched", branches)
}

func (h *BranchHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req branchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	branch := &models.Branch{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Code:      req.Code,
		Address:   strings.TrimSpace(req.Address),
		Phone:     strings.TrimSpace(req.Phone),
		IsActive:  req.IsActive == nil || *req.IsActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.CreateBranch(r.Context(), branch); err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusCreated, "Branch created", branch)
}

// UpdateBranch edits a branch. A new code only affects LR numbers issued afterwards.
func (h *BranchHandler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	branch, err := h.Repo.GetBranch(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if branch == nil {
		fail(w, http.StatusNotFound, "Branch not found")
		return
	}

	var req branchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.normalize(); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	branch.Name = req.Name
	branch.Code = req.Code
	branch.Address = strings.TrimSpace(req.Address)
	branch.Phone = strings.TrimSpace(req.Phone)
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}
	if err := h.Repo.UpdateBranch(r.Context(), branch); err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Branch updated", branch)
}
