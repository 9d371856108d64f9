package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBType         string
	PostgresURL    string
	MongoURL       string
	MongoDatabase  string
	SQLitePath     string
	MigrationsPath string
	Port           string

	JWTSecret string
	JWTTTL    time.Duration

	Timezone      string
	PendingCutoff string // HH:MM in Timezone

	StrictStatusTransitions bool

	PDFDir            string
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2Bucket          string
	R2PublicURL       string

	CORSOrigins []string

	SuperAdminEmail    string
	SuperAdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		DBType:         getEnv("DB_TYPE", "memory"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		MongoURL:       os.Getenv("MONGO_URL"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "parcelbook"),
		SQLitePath:     getEnv("SQLITE_PATH", "parcelbook.db"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		Port:           getEnv("PORT", "8080"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,

		Timezone:      getEnv("TIMEZONE", "Asia/Kolkata"),
		PendingCutoff: getEnv("PENDING_CUTOFF", "23:00"),

		StrictStatusTransitions: getEnvBool("STRICT_STATUS_TRANSITIONS", false),

		PDFDir:            getEnv("PDF_DIR", "pdfs"),
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2Bucket:          os.Getenv("R2_BUCKET"),
		R2PublicURL:       os.Getenv("R2_PUBLIC_URL"),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		SuperAdminEmail:    os.Getenv("SUPER_ADMIN_EMAIL"),
		SuperAdminPassword: os.Getenv("SUPER_ADMIN_PASSWORD"),
	}
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET not set, using an insecure development secret")
		cfg.JWTSecret = "parcelbook-dev-secret"
	}
	return cfg
}

// R2Enabled reports whether receipt uploads to R2 are configured.
func (c *Config) R2Enabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2Bucket != ""
}

// Location resolves Timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("unknown TIMEZONE %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// CutoffClock parses PendingCutoff into hour and minute.
func (c *Config) CutoffClock() (int, int, error) {
	t, err := time.Parse("15:04", c.PendingCutoff)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid PENDING_CUTOFF %q: %w", c.PendingCutoff, err)
	}
	return t.Hour(), t.Minute(), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
