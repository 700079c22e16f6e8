package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Upload UploadConfig
	Rules  RulesConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type UploadConfig struct {
	Dir           string
	MaxSizeBytes  int64
	MinImagePixel int
	MaxImagePixel int
}

type RulesConfig struct {
	// File optionally points at a YAML file overriding the built-in
	// rule tables. Empty means defaults only.
	File string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001")),
		},
		Upload: UploadConfig{
			Dir:           getEnv("UPLOAD_DIR", "uploaded_files"),
			MaxSizeBytes:  parseInt64(getEnv("MAX_UPLOAD_SIZE_MB", "10")) * 1024 * 1024,
			MinImagePixel: 100,
			MaxImagePixel: 10000,
		},
		Rules: RulesConfig{
			File: getEnv("RULES_FILE", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 10
	}
	return v
}

func parseOrigins(s string) []string {
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
