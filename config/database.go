package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	CatalogDB *pgxpool.Pool

	CatalogGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	catalogURL := os.Getenv("CATALOG_DB_URL")
	if catalogURL == "" {
		// fallback to local
		catalogURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/plant_shop?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ CATALOG_DB_URL not set, using local default")
	}

	var err error
	CatalogDB, err = pgxpool.New(context.Background(), catalogURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to catalog database: %v", err)
	}

	if err = CatalogDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Catalog database ping failed: %v", err)
	}

	log.Println("✅ Catalog database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var catalogDSN string
	if os.Getenv("CATALOG_DB_URL") != "" {
		catalogDSN = os.Getenv("CATALOG_DB_URL")
	} else {
		catalogDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=plant_shop port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ CATALOG_DB_URL not set, using local GORM default")
	}

	var err error
	CatalogGorm, err = gorm.Open(postgres.Open(catalogDSN), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to catalog database with GORM: %v", err)
	}
	if sqlDB, err := CatalogGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Catalog database connected (GORM)")
}

func CloseDB() {
	if CatalogDB != nil {
		CatalogDB.Close()
		log.Println("✅ Catalog database connection closed (pgx)")
	}

	if CatalogGorm != nil {
		sqlDB, _ := CatalogGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Catalog database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout for catalog queries
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
