package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config menampung seluruh konfigurasi aplikasi. Tidak ada variabel global:
// hasil Load() dipass eksplisit ke databases.Open, middleware, dan routes.
type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	AdminEmail    string
	AdminPassword string

	MidtransServerKey string

	CORSAllowOrigins string
}

// =======================
// ENV LOADER
// =======================
func Load() Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	cfg := Config{
		Port: GetEnv("PORT", "3000"),

		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		JWTSecret: GetEnv("JWT_SECRET"),

		AdminEmail:    GetEnv("ADMIN_EMAIL"),
		AdminPassword: GetEnv("ADMIN_PASSWORD"),

		MidtransServerKey: GetEnv("MIDTRANS_SERVER_KEY"),

		CORSAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}

	return cfg
}

// DSN merakit connection string Postgres dari konfigurasi.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
