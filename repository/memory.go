package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"parcelbook/models"
)

// ------------------------ Memory Store ------------------------

// MemoryStore implements every repository interface in process. Used by tests and DB_TYPE=memory.
type MemoryStore struct {
	mu           sync.RWMutex
	branches     map[string]*models.Branch
	counters     map[counterKey]int64
	bookings     map[string]*models.Booking
	lrIndex      map[string]string
	transactions []*models.Transaction
	idempotency  map[string]bool
	users        map[string]*models.AppUser
	permissions  map[string]*models.ReportPermission
	profile      *models.CompanyProfile
}

type counterKey struct {
	BranchID string
	Entity   string
	Field    string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		branches:    make(map[string]*models.Branch),
		counters:    make(map[counterKey]int64),
		bookings:    make(map[string]*models.Booking),
		lrIndex:     make(map[string]string),
		idempotency: make(map[string]bool),
		users:       make(map[string]*models.AppUser),
		permissions: make(map[string]*models.ReportPermission),
	}
}

// ------------------------ Branches ------------------------

func (m *MemoryStore) CreateBranch(_ context.Context, branch *models.Branch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.branches {
		if strings.EqualFold(b.Code, branch.Code) {
			return ErrDuplicateBranchCode
		}
	}
	if branch.CreatedAt.IsZero() {
		branch.CreatedAt = time.Now().UTC()
	}
	cp := *branch
	m.branches[branch.ID] = &cp
	return nil
}

func (m *MemoryStore) UpdateBranch(_ context.Context, branch *models.Branch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, b := range m.branches {
		if id != branch.ID && strings.EqualFold(b.Code, branch.Code) {
			return ErrDuplicateBranchCode
		}
	}
	cp := *branch
	m.branches[branch.ID] = &cp
	return nil
}

func (m *MemoryStore) GetBranch(_ context.Context, id string) (*models.Branch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.branches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *MemoryStore) GetBranchByCode(_ context.Context, code string) (*models.Branch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, b := range m.branches {
		if strings.EqualFold(b.Code, code) {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) ListBranches(_ context.Context, activeOnly bool) ([]*models.Branch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*models.Branch{}
	for _, b := range m.branches {
		if activeOnly && !b.IsActive {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// ------------------------ Counters ------------------------

func (m *MemoryStore) IncrementCounter(_ context.Context, branchID, entity, field string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := counterKey{BranchID: branchID, Entity: entity, Field: field}
	m.counters[k]++
	return m.counters[k], nil
}

func (m *MemoryStore) GetCounter(_ context.Context, branchID, entity, field string) (int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.counters[counterKey{BranchID: branchID, Entity: entity, Field: field}]
	return v, ok, nil
}

// ------------------------ Bookings ------------------------

func (m *MemoryStore) CreateBooking(_ context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.lrIndex[booking.LRNumber]; exists {
		return ErrDuplicateLRNumber
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	m.bookings[booking.ID] = booking.Clone()
	m.lrIndex[booking.LRNumber] = booking.ID
	return nil
}

func (m *MemoryStore) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	return b.Clone(), nil
}

func (m *MemoryStore) GetBookingByLR(_ context.Context, lrNumber string) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.lrIndex[lrNumber]
	if !ok {
		return nil, nil
	}
	return m.bookings[id].Clone(), nil
}

func (m *MemoryStore) ListBookings(_ context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*models.Booking{}
	for _, b := range m.bookings {
		if !matchBooking(b, filter) {
			continue
		}
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func matchBooking(b *models.Booking, f models.BookingFilter) bool {
	if f.BranchID != "" && b.FromBranchID != f.BranchID && b.ToBranchID != f.BranchID {
		return false
	}
	if f.FromBranchID != "" && b.FromBranchID != f.FromBranchID {
		return false
	}
	if f.ToBranchID != "" && b.ToBranchID != f.ToBranchID {
		return false
	}
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.PaymentType != "" && b.PaymentType != f.PaymentType {
		return false
	}
	if f.LRNumber != "" && b.LRNumber != f.LRNumber {
		return false
	}
	if f.From != nil && b.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && b.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

func (m *MemoryStore) UpdateBooking(_ context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.bookings[booking.ID]
	if !ok {
		return nil
	}
	now := time.Now().UTC()
	booking.UpdatedAt = &now
	updated := booking.Clone()
	updated.LRNumber = existing.LRNumber
	updated.FromBranchID = existing.FromBranchID
	updated.CreatedAt = existing.CreatedAt
	m.bookings[booking.ID] = updated
	return nil
}

func (m *MemoryStore) MarkStaleBookings(_ context.Context, from, to models.BookingStatus, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	var n int64
	for _, b := range m.bookings {
		if b.Status == from && b.CreatedAt.Before(cutoff) {
			b.Status = to
			b.UpdatedAt = &now
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) UpdatePDFInfo(_ context.Context, id string, path string, createdAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.bookings[id]; ok {
		b.PdfPath = &path
		b.PdfCreatedAt = &createdAt
	}
	return nil
}

// ------------------------ Transactions ------------------------

func (m *MemoryStore) AppendTransaction(_ context.Context, tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.IdempotencyKey != nil {
		if m.idempotency[*tx.IdempotencyKey] {
			return ErrDuplicateIdempotencyKey
		}
		m.idempotency[*tx.IdempotencyKey] = true
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	cp := *tx
	m.transactions = append(m.transactions, &cp)
	return nil
}

func (m *MemoryStore) ListTransactions(_ context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*models.Transaction{}
	for _, tx := range m.transactions {
		if filter.BranchID != "" && tx.BranchID != filter.BranchID {
			continue
		}
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.BookingID != "" && (tx.BookingID == nil || *tx.BookingID != filter.BookingID) {
			continue
		}
		if filter.From != nil && tx.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && tx.CreatedAt.After(*filter.To) {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// ------------------------ Users ------------------------

func (m *MemoryStore) CreateUser(_ context.Context, user *models.AppUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrEmailExists
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.AppUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) GetUserByID(_ context.Context, id string) (*models.AppUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *MemoryStore) CountUsers(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.users)), nil
}

// ------------------------ Report Permissions ------------------------

func (m *MemoryStore) SaveReportPermission(_ context.Context, perm *models.ReportPermission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if perm.UpdatedAt.IsZero() {
		perm.UpdatedAt = time.Now().UTC()
	}
	cp := *perm
	cp.Reports = append([]models.ReportType(nil), perm.Reports...)
	m.permissions[perm.BranchID] = &cp
	return nil
}

func (m *MemoryStore) GetReportPermission(_ context.Context, branchID string) (*models.ReportPermission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.permissions[branchID]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Reports = append([]models.ReportType(nil), p.Reports...)
	return &cp, nil
}

func (m *MemoryStore) ListReportPermissions(_ context.Context) ([]*models.ReportPermission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*models.ReportPermission{}
	for _, p := range m.permissions {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BranchID < out[j].BranchID })
	return out, nil
}

// ------------------------ Company Profile ------------------------

func (m *MemoryStore) SaveProfile(_ context.Context, profile *models.CompanyProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	cp := *profile
	m.profile = &cp
	return nil
}

func (m *MemoryStore) GetProfile(_ context.Context) (*models.CompanyProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.profile == nil {
		return nil, nil
	}
	cp := *m.profile
	return &cp, nil
}
