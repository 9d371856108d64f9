package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"parcelbook/booking"
	"parcelbook/handlers"
	"parcelbook/models"
	"parcelbook/reports"
	"parcelbook/repository"
	"parcelbook/routes"
	"parcelbook/utils"
)

// =============================================================================
// TEST SETUP
// =============================================================================

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	store  *repository.MemoryStore
	router http.Handler
	tokens *utils.TokenIssuer
	pdfDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	for _, b := range []*models.Branch{
		{ID: "b-hr", Name: "Hubli", Code: "HR", IsActive: true},
		{ID: "b-dl", Name: "Delhi", Code: "DL", IsActive: true},
		{ID: "b-mm", Name: "Mumbai", Code: "MM", IsActive: true},
	} {
		require.NoError(t, store.CreateBranch(ctx, b))
	}

	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(ctx, &models.AppUser{
		ID: "u-admin", Name: "Admin", Email: "admin@example.com", Role: models.RoleSuperAdmin, Password: hash,
	}))

	loc := time.UTC
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	svc := booking.NewService(store, store, store, store, false)
	pdfDir := t.TempDir()

	router := routes.SetupRoutes(routes.Handlers{
		User:        &handlers.UserHandler{Repo: store, Branches: store, Tokens: tokens},
		Branch:      &handlers.BranchHandler{Repo: store},
		Booking:     &handlers.BookingHandler{Service: svc, Location: loc},
		Transaction: &handlers.TransactionHandler{Repo: store},
		Report: &handlers.ReportHandler{
			Service:     reports.NewService(store, store),
			Permissions: store,
			Branches:    store,
			Location:    loc,
			Now:         time.Now,
		},
		Permission: &handlers.PermissionHandler{Repo: store, Branches: store},
		Profile:    &handlers.ProfileHandler{Repo: store},
		PDF: &handlers.PDFHandler{
			Bookings: svc,
			Repo:     repository.NewPDFRepository(store, store, store),
			Store:    &utils.LocalReceiptStore{Dir: pdfDir},
			Render:   fakeRender,
			Location: loc,
		},
	}, tokens, []string{"*"})

	return &testServer{t: t, store: store, router: router, tokens: tokens, pdfDir: pdfDir}
}

// fakeRender stands in for headless Chrome.
func fakeRender(ctx context.Context, repo *repository.PDFRepository, bookingID string, loc *time.Location) ([]byte, *models.Booking, error) {
	data, err := repo.GetReceiptData(ctx, bookingID)
	if err != nil || data == nil {
		return nil, nil, err
	}
	return []byte("%PDF-1.4 " + data.Booking.LRNumber), data.Booking, nil
}

func (s *testServer) token(userID string, role models.Role, branchID string) string {
	tok, err := s.tokens.GenerateToken(userID, string(role), branchID)
	require.NoError(s.t, err)
	return tok
}

func (s *testServer) admin() string   { return s.token("u-admin", models.RoleSuperAdmin, "") }
func (s *testServer) hrStaff() string { return s.token("u-hr", models.RoleBranch, "b-hr") }
func (s *testServer) dlStaff() string { return s.token("u-dl", models.RoleBranch, "b-dl") }
func (s *testServer) mmStaff() string { return s.token("u-mm", models.RoleBranch, "b-mm") }

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func newBookingBody(payment models.PaymentType) map[string]interface{} {
	return map[string]interface{}{
		"to_branch_id": "b-dl",
		"sender":       map[string]string{"name": "Ravi", "mobile": "9000000001"},
		"receiver":     map[string]string{"name": "Meena", "mobile": "9000000002"},
		"items": []map[string]interface{}{
			{"quantity": 2, "item_type": "Carton", "weight_kg": "10", "rate": "150"},
		},
		"handling":     "20",
		"hamali":       "10",
		"payment_type": payment,
	}
}

func (s *testServer) createBooking(token string, payment models.PaymentType) models.Booking {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/bookings", token, newBookingBody(payment))
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	var b models.Booking
	decode(s.t, rec, &b)
	return b
}

// =============================================================================
// AUTH
// =============================================================================

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	// GIVEN the seeded admin credentials
	rec := s.do(http.MethodPost, "/login", "", map[string]string{"email": "Admin@Example.com", "password": "s3cret"})

	// THEN a usable token comes back without the password hash
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Token string          `json:"token"`
		User  *models.AppUser `json:"user"`
	}
	env := decode(t, rec, &body)
	assert.True(t, env.Success)
	assert.Empty(t, body.User.Password)

	me := s.do(http.MethodGet, "/api/me", body.Token, nil)
	assert.Equal(t, http.StatusOK, me.Code)

	// AND a wrong password is rejected
	rec = s.do(http.MethodPost, "/login", "", map[string]string{"email": "admin@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/bookings", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateUser(t *testing.T) {
	s := newTestServer(t)
	body := map[string]interface{}{
		"name": "Hubli Clerk", "email": "clerk@example.com", "password": "pw", "role": "BRANCH", "branch_id": "b-hr",
	}

	// Branch staff cannot create users
	rec := s.do(http.MethodPost, "/api/users", s.hrStaff(), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/users", s.admin(), body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The same email again conflicts
	rec = s.do(http.MethodPost, "/api/users", s.admin(), body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// A branch user needs a real branch
	body["email"] = "other@example.com"
	body["branch_id"] = "b-nowhere"
	rec = s.do(http.MethodPost, "/api/users", s.admin(), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/login", "", map[string]string{"email": "clerk@example.com", "password": "pw"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

// =============================================================================
// BRANCHES
// =============================================================================

func TestBranchEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/branches", s.hrStaff(), map[string]string{"name": "Pune", "code": "pn"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/branches", s.admin(), map[string]string{"name": "Pune", "code": "pn"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created models.Branch
	decode(t, rec, &created)
	assert.Equal(t, "PN", created.Code)
	assert.True(t, created.IsActive)

	rec = s.do(http.MethodPost, "/api/branches", s.admin(), map[string]string{"name": "Pune 2", "code": "PN"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/api/branches", s.admin(), map[string]string{"name": "Bad", "code": "A/B"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	inactive := false
	rec = s.do(http.MethodPut, "/api/branches/"+created.ID, s.admin(), map[string]interface{}{"name": "Pune", "code": "PNQ", "is_active": inactive})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var listed []models.Branch
	decode(t, s.do(http.MethodGet, "/api/branches", s.hrStaff(), nil), &listed)
	assert.Len(t, listed, 3)

	decode(t, s.do(http.MethodGet, "/api/branches?all=true", s.admin(), nil), &listed)
	assert.Len(t, listed, 4)
}

// =============================================================================
// BOOKINGS
// =============================================================================

func TestCreateBookingIssuesLRNumbers(t *testing.T) {
	s := newTestServer(t)

	// GIVEN Hubli staff naming another origin branch
	body := newBookingBody(models.PaymentPaid)
	body["from_branch_id"] = "b-mm"

	// WHEN they book twice
	rec := s.do(http.MethodPost, "/api/bookings", s.hrStaff(), body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var first models.Booking
	decode(t, rec, &first)
	second := s.createBooking(s.hrStaff(), models.PaymentToPay)

	// THEN both originate from their own branch with consecutive LR numbers
	assert.Equal(t, "b-hr", first.FromBranchID)
	assert.Equal(t, "HR/0001", first.LRNumber)
	assert.Equal(t, "HR/0002", second.LRNumber)
	assert.True(t, decimal.NewFromInt(330).Equal(first.Costs.Total))
	assert.Equal(t, models.StatusBooked, first.Status)

	// AND the prepaid booking credited Hubli
	var bal models.BranchBalance
	decode(t, s.do(http.MethodGet, "/api/branches/b-hr/balance", s.hrStaff(), nil), &bal)
	assert.True(t, decimal.NewFromInt(330).Equal(bal.Net))
	assert.Equal(t, 1, bal.Entries)
}

func TestCreateBookingValidation(t *testing.T) {
	s := newTestServer(t)

	body := newBookingBody(models.PaymentPaid)
	body["to_branch_id"] = "b-hr"
	rec := s.do(http.MethodPost, "/api/bookings", s.hrStaff(), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = newBookingBody("Credit")
	rec = s.do(http.MethodPost, "/api/bookings", s.hrStaff(), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = newBookingBody(models.PaymentPaid)
	body["to_branch_id"] = "b-nowhere"
	rec = s.do(http.MethodPost, "/api/bookings", s.hrStaff(), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+s.hrStaff())
	raw := httptest.NewRecorder()
	s.router.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestGetBookingScoping(t *testing.T) {
	s := newTestServer(t)
	b := s.createBooking(s.hrStaff(), models.PaymentPaid)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/bookings/"+b.ID, s.dlStaff(), nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/bookings/"+b.ID, s.mmStaff(), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/bookings/missing", s.admin(), nil).Code)

	rec := s.do(http.MethodGet, "/api/bookings/lr/HR/0001", s.admin(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var byLR models.Booking
	decode(t, rec, &byLR)
	assert.Equal(t, b.ID, byLR.ID)

	var listed []models.Booking
	decode(t, s.do(http.MethodGet, "/api/bookings", s.mmStaff(), nil), &listed)
	assert.Empty(t, listed)
	decode(t, s.do(http.MethodGet, "/api/bookings?status=Booked", s.dlStaff(), nil), &listed)
	assert.Len(t, listed, 1)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/bookings?status=Lost", s.admin(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/bookings?from=yesterday", s.admin(), nil).Code)
}

func TestDeliveryCollectsToPay(t *testing.T) {
	s := newTestServer(t)
	b := s.createBooking(s.hrStaff(), models.PaymentToPay)

	// WHEN Delhi marks the To Pay parcel delivered
	rec := s.do(http.MethodPut, "/api/bookings/"+b.ID+"/status", s.dlStaff(), map[string]string{
		"status": "Delivered", "collected_by_name": "Meena", "collected_by_mobile": "9000000002",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var delivered models.Booking
	decode(t, rec, &delivered)

	// THEN the collection is credited to Delhi once, however often the status is resent
	assert.Equal(t, "Meena", delivered.Delivery.CollectedByName)
	require.NotNil(t, delivered.Delivery.DeliveredAt)
	s.do(http.MethodPut, "/api/bookings/"+b.ID+"/status", s.dlStaff(), map[string]string{"status": "Delivered"})

	var txs []models.Transaction
	decode(t, s.do(http.MethodGet, "/api/transactions", s.dlStaff(), nil), &txs)
	require.Len(t, txs, 1)
	assert.Equal(t, models.Credit, txs[0].Type)
	assert.Equal(t, "b-dl", txs[0].BranchID)

	// AND Mumbai cannot touch it
	rec = s.do(http.MethodPut, "/api/bookings/"+b.ID+"/status", s.mmStaff(), map[string]string{"status": "Cancelled"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// AND Mumbai cannot see Delhi's balance
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/branches/b-dl/balance", s.mmStaff(), nil).Code)
}

func TestEditRemarks(t *testing.T) {
	s := newTestServer(t)
	b := s.createBooking(s.hrStaff(), models.PaymentPaid)

	rec := s.do(http.MethodPut, "/api/bookings/"+b.ID+"/remarks", s.hrStaff(), map[string]string{"remarks": "fragile"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Booking
	decode(t, rec, &updated)

	assert.Equal(t, "fragile", updated.Remarks)
	require.Len(t, updated.EditHistory, 1)
	assert.Equal(t, "u-hr", updated.EditHistory[0].EditedBy)
	assert.Equal(t, b.LRNumber, updated.LRNumber)
}

// =============================================================================
// REPORTS
// =============================================================================

func TestReportsRequirePermission(t *testing.T) {
	s := newTestServer(t)
	s.createBooking(s.hrStaff(), models.PaymentPaid)

	// GIVEN no permission row for Hubli
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/reports/summary", s.hrStaff(), nil).Code)

	// WHEN the admin enables the summary and bookings reports
	rec := s.do(http.MethodPut, "/api/report-permissions/b-hr", s.admin(), map[string]interface{}{
		"reports": []string{"summary", "bookings", "summary"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var perm models.ReportPermission
	decode(t, rec, &perm)
	assert.Len(t, perm.Reports, 2)

	// THEN Hubli sees its summary but still not the ledger
	rec = s.do(http.MethodGet, "/api/reports/summary?period=today", s.hrStaff(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var sum reports.Summary
	decode(t, rec, &sum)
	assert.Equal(t, 1, sum.Bookings)
	assert.True(t, decimal.NewFromInt(330).Equal(sum.PaidRevenue))
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/reports/ledger", s.hrStaff(), nil).Code)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/reports/summary?period=decade", s.hrStaff(), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/reports/payroll", s.admin(), nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, "/api/report-permissions/b-hr", s.hrStaff(), map[string]interface{}{"reports": []string{}}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/api/report-permissions/b-hr", s.admin(), map[string]interface{}{"reports": []string{"payroll"}}).Code)
}

func TestExportReport(t *testing.T) {
	s := newTestServer(t)
	b := s.createBooking(s.hrStaff(), models.PaymentPaid)

	rec := s.do(http.MethodGet, "/api/reports/bookings/export", s.admin(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bookings_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, b.LRNumber, rows[1][0])
	assert.Equal(t, "Hubli", rows[1][2])

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/reports/summary/export", s.admin(), nil).Code)
}

func TestReportsCustomDateRange(t *testing.T) {
	s := newTestServer(t)
	b := s.createBooking(s.hrStaff(), models.PaymentPaid)
	today := time.Now().UTC().Format("2006-01-02")
	lastWeek := time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02")
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	// WHEN the range ends today
	rec := s.do(http.MethodGet, "/api/reports/summary?from="+lastWeek+"&to="+today, s.admin(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var sum reports.Summary
	decode(t, rec, &sum)

	// THEN today's booking is counted
	assert.Equal(t, 1, sum.Bookings)
	assert.Equal(t, lastWeek, sum.Period.From.Format("2006-01-02"))
	assert.Equal(t, today, sum.Period.To.Format("2006-01-02"))

	// WHEN the range ends before today
	rec = s.do(http.MethodGet, "/api/reports/summary?from="+lastWeek+"&to="+yesterday, s.admin(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sum = reports.Summary{}
	decode(t, rec, &sum)
	assert.Equal(t, 0, sum.Bookings)

	// export honours the same range
	rec = s.do(http.MethodGet, "/api/reports/bookings/export?from="+today+"&to="+today, s.admin(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, b.LRNumber, rows[1][0])

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/reports/summary?from="+today+"&to="+lastWeek, s.admin(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/reports/summary?from="+today, s.admin(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/reports/summary?from=01-02-2026&to="+today, s.admin(), nil).Code)
}

// =============================================================================
// RECEIPTS & PROFILE
// =============================================================================

func TestReceiptPDFReplacesPrevious(t *testing.T) {
	s := newTestServer(t)
	b := s.createBooking(s.hrStaff(), models.PaymentPaid)

	type receipt struct {
		File string `json:"file"`
	}

	// WHEN the receipt is generated twice
	rec := s.do(http.MethodPost, "/api/bookings/"+b.ID+"/receipt", s.hrStaff(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var first receipt
	decode(t, rec, &first)

	// receipt names carry a second-resolution timestamp
	time.Sleep(1100 * time.Millisecond)
	rec = s.do(http.MethodPost, "/api/bookings/"+b.ID+"/receipt", s.hrStaff(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var second receipt
	decode(t, rec, &second)

	// THEN only the latest file remains and the booking points at it
	assert.NotEqual(t, first.File, second.File)
	_, err := os.Stat(first.File)
	assert.True(t, os.IsNotExist(err))
	content, err := os.ReadFile(second.File)
	require.NoError(t, err)
	assert.Contains(t, string(content), "HR/0001")

	stored, err := s.store.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PdfPath)
	assert.Equal(t, second.File, *stored.PdfPath)
	assert.NotNil(t, stored.PdfCreatedAt)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/bookings/"+b.ID+"/receipt", s.mmStaff(), nil).Code)
}

func TestProfileEndpoints(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/profile", s.hrStaff(), nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, "/api/profile", s.hrStaff(), map[string]string{"company_name": "X"}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/api/profile", s.admin(), map[string]string{"company_name": " "}).Code)

	rec := s.do(http.MethodPut, "/api/profile", s.admin(), map[string]string{"company_name": "Sri Ganesh Roadlines", "gstin": "29abcde1234f1z5"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var profile models.CompanyProfile
	decode(t, s.do(http.MethodGet, "/api/profile", s.hrStaff(), nil), &profile)
	assert.Equal(t, "Sri Ganesh Roadlines", profile.CompanyName)
	assert.Equal(t, "29ABCDE1234F1Z5", profile.GSTIN)
}

func TestRecoverWrapper(t *testing.T) {
	h := handlers.RecoverWrapper(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
