package handlers

import (
	"net/http"
	"strconv"

	"parcelbook/models"
	"parcelbook/repository"

	"github.com/go-chi/chi/v5"
)

type TransactionHandler struct {
	Repo repository.TransactionRepository
}

// ListTransactions returns ledger entries oldest first. Branch staff only see their own branch.
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.TransactionFilter{
		BranchID:  q.Get("branch_id"),
		Type:      models.TransactionType(q.Get("type")),
		BookingID: q.Get("booking_id"),
	}
	if filter.Type != "" && filter.Type != models.Credit && filter.Type != models.Debit {
		fail(w, http.StatusBadRequest, "type must be CREDIT or DEBIT")
		return
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			fail(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = n
	}

	actor := actorFrom(r)
	if !actor.IsSuperAdmin() {
		filter.BranchID = actor.BranchID
	}

	txs, err := h.Repo.ListTransactions(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Transactions fetched", txs)
}

// BranchBalance sums the branch's ledger into credits, debits and net.
func (h *TransactionHandler) BranchBalance(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "id")
	if !actorFrom(r).CanAccess(branchID) {
		fail(w, http.StatusForbidden, "Cannot view another branch's balance")
		return
	}

	txs, err := h.Repo.ListTransactions(r.Context(), models.TransactionFilter{BranchID: branchID})
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w, http.StatusOK, "Balance computed", models.NewBranchBalance(branchID, txs))
}
