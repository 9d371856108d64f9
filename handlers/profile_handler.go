package handlers

import (
	"net/http"
	"strings"
	"time"

	"parcelbook/models"
	"parcelbook/repository"

	"github.com/google/uuid"
)

// ProfileHandler manages the company letterhead printed on receipts.
type ProfileHandler struct {
	Repo repository.ProfileRepository
}

func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.CompanyProfile
	if !decodeJSON(w, r, &profile) {
		return
	}
	profile.CompanyName = strings.TrimSpace(profile.CompanyName)
	if profile.CompanyName == "" {
		fail(w, http.StatusBadRequest, "Company name is required")
		return
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.GSTIN = strings.ToUpper(strings.TrimSpace(profile.GSTIN))
	profile.CreatedAt = time.Now().UTC()

	if err := h.Repo.SaveProfile(r.Context(), &profile); err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Company profile saved", profile)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Repo.GetProfile(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		fail(w, http.StatusNotFound, "Company profile not set")
		return
	}
	ok(w, http.StatusOK, "Company profile fetched", profile)
}
