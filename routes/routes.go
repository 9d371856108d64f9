package routes

import (
	"net/http"

	"parcelbook/handlers"
	"parcelbook/middleware"
	"parcelbook/models"
	"parcelbook/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	User        *handlers.UserHandler
	Branch      *handlers.BranchHandler
	Booking     *handlers.BookingHandler
	Transaction *handlers.TransactionHandler
	Report      *handlers.ReportHandler
	Permission  *handlers.PermissionHandler
	Profile     *handlers.ProfileHandler
	PDF         *handlers.PDFHandler
}

func SetupRoutes(h Handlers, tokens *utils.TokenIssuer, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(handlers.RecoverWrapper)
	r.Use(middleware.PrometheusMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/login", h.User.Login)

	superAdmin := middleware.RequireRole(models.RoleSuperAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(tokens))

		r.Get("/me", h.User.Me)
		r.With(superAdmin).Post("/users", h.User.CreateUser)

		r.Route("/branches", func(r chi.Router) {
			r.Get("/", h.Branch.ListBranches)
			r.With(superAdmin).Post("/", h.Branch.CreateBranch)
			r.With(superAdmin).Put("/{id}", h.Branch.UpdateBranch)
			r.Get("/{id}/balance", h.Transaction.BranchBalance)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.Booking.CreateBooking)
			r.Get("/", h.Booking.ListBookings)
			r.Get("/lr/{branch}/{seq}", h.Booking.GetBookingByLR)
			r.Get("/{id}", h.Booking.GetBooking)
			r.Put("/{id}/status", h.Booking.UpdateStatus)
			r.Put("/{id}/remarks", h.Booking.EditRemarks)
			r.Post("/{id}/receipt", h.PDF.ReceiptPDF)
		})

		r.Get("/transactions", h.Transaction.ListTransactions)

		r.Get("/reports/{type}", h.Report.GetReport)
		r.Get("/reports/{type}/export", h.Report.ExportReport)

		r.Route("/report-permissions", func(r chi.Router) {
			r.Use(superAdmin)
			r.Get("/", h.Permission.ListPermissions)
			r.Put("/{branchId}", h.Permission.SavePermission)
		})

		r.Get("/profile", h.Profile.GetProfile)
		r.With(superAdmin).Put("/profile", h.Profile.SaveProfile)
	})

	return r
}
