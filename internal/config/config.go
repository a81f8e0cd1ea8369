package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/futliga/liga-api/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CacheEnabled               bool
	CacheTTL                   time.Duration
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	ForfeitGoals               int
	AuthdBaseURL               string
	AuthdIntrospectPath        string
	AuthdAdminKey              string
	AuthdTimeout               time.Duration
	AuthdCircuitEnabled        bool
	AuthdCircuitFailureCount   int
	AuthdCircuitOpenTimeout    time.Duration
	AuthdCircuitHalfOpenMaxReq int
	BlobdBaseURL               string
	BlobdPublicURL             string
	BlobdAccessKey             string
	BlobdTimeout               time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	forfeitGoals, err := getEnvAsInt("FORFEIT_GOALS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FORFEIT_GOALS: %w", err)
	}
	if forfeitGoals < 1 {
		return Config{}, fmt.Errorf("FORFEIT_GOALS must be >= 1")
	}

	authdTimeout, err := time.ParseDuration(getEnv("AUTHD_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTHD_TIMEOUT: %w", err)
	}
	authdCircuitEnabled, err := strconv.ParseBool(getEnv("AUTHD_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTHD_CIRCUIT_ENABLED: %w", err)
	}
	authdCircuitFailureCount, err := getEnvAsInt("AUTHD_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTHD_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if authdCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("AUTHD_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	authdCircuitOpenTimeout, err := time.ParseDuration(getEnv("AUTHD_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTHD_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if authdCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("AUTHD_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	authdCircuitHalfOpenMaxReq, err := getEnvAsInt("AUTHD_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTHD_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if authdCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("AUTHD_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	blobdTimeout, err := time.ParseDuration(getEnv("BLOBD_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BLOBD_TIMEOUT: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "liga-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                      strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		ForfeitGoals:               forfeitGoals,
		AuthdBaseURL:               getEnv("AUTHD_BASE_URL", "http://localhost:8081"),
		AuthdIntrospectPath:        getEnv("AUTHD_INTROSPECT_PATH", "/v1/auth/introspect"),
		AuthdAdminKey:              strings.TrimSpace(getEnv("AUTHD_ADMIN_KEY", "")),
		AuthdTimeout:               authdTimeout,
		AuthdCircuitEnabled:        authdCircuitEnabled,
		AuthdCircuitFailureCount:   authdCircuitFailureCount,
		AuthdCircuitOpenTimeout:    authdCircuitOpenTimeout,
		AuthdCircuitHalfOpenMaxReq: authdCircuitHalfOpenMaxReq,
		BlobdBaseURL:               getEnv("BLOBD_BASE_URL", "http://localhost:8082"),
		BlobdPublicURL:             strings.TrimSpace(getEnv("BLOBD_PUBLIC_URL", "")),
		BlobdAccessKey:             strings.TrimSpace(getEnv("BLOBD_ACCESS_KEY", "")),
		BlobdTimeout:               blobdTimeout,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}
