package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig gathers everything the server needs from the environment.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	SiteBaseURL   string
	LegacyHosts   []string

	AdminUserName string
	AdminPassword string

	RedisAddr string

	StorageDriver   string
	UploadDir       string
	UploadURLPath   string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3UseSSL        bool
	S3PublicBaseURL string
}

// Storage driver selection values.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Load reads the application configuration from environment variables,
// falling back to safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "biochem.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "biochem-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://www.biochemsafety.co.il"
	}

	legacyHosts := splitHosts(os.Getenv("LEGACY_HOSTS"))

	storageDriver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
	if storageDriver != StorageS3 {
		storageDriver = StorageLocal
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "web/static/uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/static/uploads"
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		SessionSecret: sessionSecret,
		GinMode:       ginMode,
		SiteBaseURL:   siteBaseURL,
		LegacyHosts:   legacyHosts,

		AdminUserName: strings.TrimSpace(os.Getenv("ADMIN_USER_NAME")),
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),

		RedisAddr: strings.TrimSpace(os.Getenv("REDIS_ADDR")),

		StorageDriver:   storageDriver,
		UploadDir:       uploadDir,
		UploadURLPath:   uploadURLPath,
		S3Endpoint:      strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3AccessKey:     strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey:     strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		S3Bucket:        strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3UseSSL:        strings.TrimSpace(os.Getenv("S3_USE_SSL")) == "true",
		S3PublicBaseURL: strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL")),
	}
}

func splitHosts(raw string) []string {
	parts := strings.Split(raw, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			hosts = append(hosts, trimmed)
		}
	}
	return hosts
}
