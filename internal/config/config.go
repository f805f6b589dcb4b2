package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile    string        // path to the grants.yaml catalog file
	ReloadInterval time.Duration // interval to reload the catalog (default: 24h)
	NotifyInterval time.Duration // interval between deadline checks (default: 24h)
	PageSize       int           // grants per result page (default: 9)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict infra endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
	CORSOrigins  []string // optional, allowed CORS origins (empty = allow all)

	RateLimitBurst  int // token bucket size per client IP
	RateLimitPerMin int // token refill per client IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("GRANTBOARD_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("GRANTBOARD_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("GRANTBOARD_LOG_LEVEL", "info"),
		PrettyLog: mustBool("GRANTBOARD_PRETTY_LOG", true),

		// Grant catalog
		CatalogFile:    getenv("GRANTBOARD_CATALOG_FILE", "grants.yaml"),
		ReloadInterval: mustDuration("GRANTBOARD_RELOAD_INTERVAL", 24*time.Hour),
		NotifyInterval: mustDuration("GRANTBOARD_NOTIFY_INTERVAL", 24*time.Hour),
		PageSize:       getenvInt("GRANTBOARD_PAGE_SIZE", 9),

		// Redis settings
		RedisAddr:             requireEnv("GRANTBOARD_REDIS_ADDR"),
		RedisUser:             getenv("GRANTBOARD_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("GRANTBOARD_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("GRANTBOARD_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("GRANTBOARD_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("GRANTBOARD_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("GRANTBOARD_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("GRANTBOARD_TRUST_PROXY", false),
		CORSOrigins:  splitAndTrim(getenv("GRANTBOARD_CORS_ORIGINS", "")),

		// Rate limiting
		RateLimitBurst:  getenvInt("GRANTBOARD_RATE_LIMIT_BURST", 30),
		RateLimitPerMin: getenvInt("GRANTBOARD_RATE_LIMIT_PER_MIN", 120),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: GRANTBOARD_REDIS_PASSWORD is required when GRANTBOARD_REDIS_PASSWORD_REQUIRED=true")
	}

	if cfg.PageSize < 1 {
		panic(fmt.Sprintf("❌ FATAL: GRANTBOARD_PAGE_SIZE must be >= 1, got %d", cfg.PageSize))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
