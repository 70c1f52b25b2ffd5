package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds every setting the server needs. It is built once by Load
// and passed down; nothing reads the environment after that.
type AppConfig struct {
	Port               string
	Env                string
	MongoURI           string
	MongoDatabase      string
	CloudinaryURL      string
	UploadFolder       string
	AllowedOrigins     []string
	RequestTimeout     time.Duration
	MaxMultipartMemory int64
}

var defaultOrigins = []string{
	"https://nexzenow.com",
	"https://nexzen-admin.vercel.app",
	"http://localhost:5173",
	"http://localhost:5174",
}

// Load reads a .env file if present, then the environment.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:           getEnv("PORT", "6000"),
		Env:            getEnv("ENVIRONMENT", "development"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "nexzen"),
		CloudinaryURL:  getEnv("CLOUDINARY_URL", ""),
		UploadFolder:   getEnv("CLOUDINARY_FOLDER", "products"),
		AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "")),
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = append([]string(nil), defaultOrigins...)
	}

	for _, origin := range cfg.AllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("CORS_ORIGINS: %q must start with http:// or https://", origin)
		}
	}

	if cfg.CloudinaryURL == "" {
		return nil, errors.New("CLOUDINARY_URL is not set")
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "30s"))
	if err != nil {
		return nil, errors.New("REQUEST_TIMEOUT must be a duration such as 30s")
	}
	cfg.RequestTimeout = timeout

	memMB, err := strconv.ParseInt(getEnv("MAX_MULTIPART_MB", "8"), 10, 64)
	if err != nil || memMB <= 0 {
		return nil, errors.New("MAX_MULTIPART_MB must be a positive integer")
	}
	cfg.MaxMultipartMemory = memMB << 20

	return cfg, nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
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
