package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"stonkie-backend/internal/shared/telemetry"
)

const (
	StoreGCS   = "gcs"
	StoreS3    = "s3"
	StoreLocal = "local"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	ObjectStoreType      string
	StatementsBucket     string
	GoogleCredentialsB64 string
	AWSRegion            string
	S3Bucket             string
	S3Prefix             string
	LocalStoreDir        string
	ArtifactStoreType    string
	ArtifactDir          string

	LLMProvider  string
	LLMModel     string
	GeminiAPIKey string
	OpenAIAPIKey string
	LLMTimeout   time.Duration

	DatabaseURL    string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": env})
	}

	return Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  env,
		CORSAllowOrigin:      splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,https://stonkie.netlify.app")),
		ObjectStoreType:      normalizeStoreType(getEnv("OBJECT_STORE", StoreGCS)),
		StatementsBucket:     getEnv("STATEMENTS_BUCKET", "stock_agent_financial_report"),
		GoogleCredentialsB64: getEnv("GOOGLE_APPLICATION_CREDENTIALS_JSON", ""),
		AWSRegion:            getEnv("AWS_REGION", ""),
		S3Bucket:             getEnv("S3_BUCKET", ""),
		S3Prefix:             getEnv("S3_PREFIX", ""),
		LocalStoreDir:        getEnv("LOCAL_STORE_DIR", "./outputs"),
		ArtifactStoreType:    normalizeArtifactStore(getEnv("ARTIFACT_STORE", StoreLocal)),
		ArtifactDir:          getEnv("ARTIFACT_DIR", "./outputs"),
		LLMProvider:          strings.ToLower(getEnv("LLM_PROVIDER", "gemini")),
		LLMModel:             getEnv("LLM_MODEL", "gemini-1.5-pro"),
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		LLMTimeout:           time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		DatabaseURL:          dbURL,
		RateLimitRPS:         getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:       getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		telemetry.Warn("config.invalid_int", map[string]any{"key": key, "value": raw, "default": def})
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 {
		telemetry.Warn("config.invalid_number", map[string]any{"key": key, "value": raw, "default": def})
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StoreS3:
		return StoreS3
	case StoreLocal:
		return StoreLocal
	default:
		return StoreGCS
	}
}

// normalizeArtifactStore maps ARTIFACT_STORE to either "local" or "same", where
// "same" writes analysis artifacts next to the statements in the object store.
func normalizeArtifactStore(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "same") {
		return "same"
	}
	return StoreLocal
}
