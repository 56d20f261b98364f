package config

import (
	"os"

	"github.com/joho/godotenv"
)

// cloudinaryPlaceholder is the sample value shipped in .env templates; creds
// still carrying it count as unconfigured.
const cloudinaryPlaceholder = "YOUR_API_KEY_HERE"

// Config holds application configuration values.
type Config struct {
	AppPort     string
	DatabaseURL string
	FrontendURL string
	UploadDir   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

// Load reads environment variables and returns a populated Config.
// DATABASE_URL may legitimately be empty: the server then starts degraded,
// serving only routes that do not touch the entity store.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:             getEnv("PORT", "4000"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		FrontendURL:         getEnv("FRONTEND_URL", ""),
		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

// CloudinaryConfigured reports whether a complete, non-placeholder set of
// remote storage credentials is present.
func (c *Config) CloudinaryConfigured() bool {
	if c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "" {
		return false
	}
	return c.CloudinaryAPIKey != cloudinaryPlaceholder &&
		c.CloudinaryAPISecret != cloudinaryPlaceholder &&
		c.CloudinaryCloudName != cloudinaryPlaceholder
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
