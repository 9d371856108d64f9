package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcelbook/booking"
	"parcelbook/config"
	"parcelbook/db"
	"parcelbook/db/mongo"
	"parcelbook/db/postgres"
	"parcelbook/db/sqlite"
	"parcelbook/handlers"
	"parcelbook/logger"
	"parcelbook/metrics"
	"parcelbook/models"
	"parcelbook/reports"
	"parcelbook/repository"
	"parcelbook/routes"
	"parcelbook/scheduler"
	"parcelbook/utils"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

type stores struct {
	branches     repository.BranchRepository
	counters     repository.CounterRepository
	bookings     repository.BookingRepository
	transactions repository.TransactionRepository
	users        repository.UserRepository
	permissions  repository.ReportPermissionRepository
	profile      repository.ProfileRepository
}

func sqlStores(conn *sql.DB) stores {
	return stores{
		branches:     repository.NewSQLBranchRepo(conn),
		counters:     repository.NewSQLCounterRepo(conn),
		bookings:     repository.NewSQLBookingRepo(conn),
		transactions: repository.NewSQLTransactionRepo(conn),
		users:        repository.NewSQLUserRepo(conn),
		permissions:  repository.NewSQLPermissionRepo(conn),
		profile:      repository.NewSQLProfileRepo(conn),
	}
}

// openStores connects the backend named by DB_TYPE and prepares its schema.
func openStores(cfg *config.Config) (stores, db.DB, error) {
	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			return stores{}, nil, err
		}
		if err := db.RunMigrations(pg.Conn, db.Postgres, cfg.MigrationsPath); err != nil {
			return stores{}, pg, err
		}
		return sqlStores(pg.Conn), pg, nil

	case db.SQLite, "sqlite":
		lite := sqlite.NewSQLiteDB(cfg.SQLitePath)
		if err := lite.Connect(); err != nil {
			return stores{}, nil, err
		}
		if err := db.RunMigrations(lite.Conn, db.SQLite, cfg.MigrationsPath); err != nil {
			return stores{}, lite, err
		}
		return sqlStores(lite.Conn), lite, nil

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDatabase)
		if err := mg.Connect(); err != nil {
			return stores{}, nil, err
		}
		if err := repository.EnsureMongoIndexes(mg.Ctx, mg.Database); err != nil {
			return stores{}, mg, err
		}
		return stores{
			branches:     repository.NewMongoBranchRepo(mg.Database),
			counters:     repository.NewMongoCounterRepo(mg.Database),
			bookings:     repository.NewMongoBookingRepo(mg.Database),
			transactions: repository.NewMongoTransactionRepo(mg.Database),
			users:        repository.NewMongoUserRepo(mg.Database),
			permissions:  repository.NewMongoPermissionRepo(mg.Database),
			profile:      repository.NewMongoProfileRepo(mg.Database),
		}, mg, nil

	case db.Memory:
		logger.Warn("DB_TYPE=memory: data is lost on restart")
		m := repository.NewMemoryStore()
		return stores{m, m, m, m, m, m, m}, nil, nil
	}
	return stores{}, nil, fmt.Errorf("DB_TYPE %q not supported", cfg.DBType)
}

// seedSuperAdmin creates the first account from SUPER_ADMIN_EMAIL/PASSWORD on an empty user table.
func seedSuperAdmin(ctx context.Context, users repository.UserRepository, cfg *config.Config) error {
	count, err := users.CountUsers(ctx)
	if err != nil || count > 0 {
		return err
	}
	if cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		logger.Warn("no users exist and SUPER_ADMIN_EMAIL/SUPER_ADMIN_PASSWORD are not set")
		return nil
	}

	hash, err := utils.HashPassword(cfg.SuperAdminPassword)
	if err != nil {
		return err
	}
	err = users.CreateUser(ctx, &models.AppUser{
		ID:        uuid.NewString(),
		Name:      "Super Admin",
		Email:     cfg.SuperAdminEmail,
		Role:      models.RoleSuperAdmin,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	logger.Success("seeded super admin " + cfg.SuperAdminEmail)
	return nil
}

func receiptStore(ctx context.Context, cfg *config.Config) utils.ReceiptStore {
	if cfg.R2Enabled() {
		store, err := utils.NewR2ReceiptStore(ctx, cfg.R2AccountID, cfg.R2AccessKeyID, cfg.R2SecretAccessKey, cfg.R2Bucket, cfg.R2PublicURL)
		if err == nil {
			logger.Info("storing receipts in R2 bucket " + cfg.R2Bucket)
			return store
		}
		logger.Error("R2 setup failed, storing receipts locally", err)
	}
	return &utils.LocalReceiptStore{Dir: cfg.PDFDir}
}

func main() {
	cfg := config.LoadConfig()
	loc := cfg.Location()
	cutoffHour, cutoffMinute, err := cfg.CutoffClock()
	if err != nil {
		logger.Error("invalid configuration", err)
		os.Exit(1)
	}

	st, conn, err := openStores(cfg)
	if conn != nil {
		defer conn.Disconnect()
	}
	if err != nil {
		logger.Error("database setup failed", err)
		os.Exit(1)
	}
	logger.Success("connected to " + cfg.DBType + " store")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := seedSuperAdmin(ctx, st.users, cfg); err != nil {
		logger.Error("seeding super admin failed", err)
		os.Exit(1)
	}

	metrics.Register(prometheus.DefaultRegisterer)

	bookingService := booking.NewService(st.branches, st.counters, st.bookings, st.transactions, cfg.StrictStatusTransitions)
	sched, err := scheduler.Start(ctx, &scheduler.SweepJob{
		Sweeper:  bookingService,
		Location: loc,
		Hour:     cutoffHour,
		Minute:   cutoffMinute,
		Now:      time.Now,
	})
	if err != nil {
		logger.Error("scheduler setup failed", err)
		os.Exit(1)
	}
	defer sched.Stop()

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	router := routes.SetupRoutes(routes.Handlers{
		User:        &handlers.UserHandler{Repo: st.users, Branches: st.branches, Tokens: tokens},
		Branch:      &handlers.BranchHandler{Repo: st.branches},
		Booking:     &handlers.BookingHandler{Service: bookingService, Location: loc},
		Transaction: &handlers.TransactionHandler{Repo: st.transactions},
		Report: &handlers.ReportHandler{
			Service:     reports.NewService(st.bookings, st.transactions),
			Permissions: st.permissions,
			Branches:    st.branches,
			Location:    loc,
			Now:         time.Now,
		},
		Permission: &handlers.PermissionHandler{Repo: st.permissions, Branches: st.branches},
		Profile:    &handlers.ProfileHandler{Repo: st.profile},
		PDF: &handlers.PDFHandler{
			Bookings: bookingService,
			Repo:     repository.NewPDFRepository(st.bookings, st.branches, st.profile),
			Store:    receiptStore(ctx, cfg),
			Render:   utils.GenerateReceiptPDF,
			Location: loc,
		},
	}, tokens, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server running on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", err)
	}
	logger.Info("server stopped")
}
