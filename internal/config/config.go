package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ThreatFile string // optional path to a threat-level definitions yaml (empty = built-in seed)

	FeedURL      string        // disaster feed endpoint (optional, empty = feed disabled)
	FeedInterval time.Duration // interval between feed polls (default: 45s)
	FeedTimeout  time.Duration // timeout per feed fetch (default: 10s)

	// Create endpoint rate limiting
	CreateBurst        int // token bucket burst for POST /api/entries
	CreateRefillPerMin int // tokens refilled per IP per minute

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	TrustProxy bool // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("ARCANUM_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("ARCANUM_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("ARCANUM_LOG_LEVEL", "info"),
		PrettyLog: mustBool("ARCANUM_PRETTY_LOG", true),

		// Seed data
		ThreatFile: getenv("ARCANUM_THREAT_FILE", ""),

		// Disaster feed
		FeedURL:      getenv("ARCANUM_FEED_URL", ""),
		FeedInterval: mustDuration("ARCANUM_FEED_INTERVAL", 45*time.Second),
		FeedTimeout:  mustDuration("ARCANUM_FEED_TIMEOUT", 10*time.Second),

		// Rate limiting
		CreateBurst:        getenvInt("ARCANUM_CREATE_BURST", 10),
		CreateRefillPerMin: getenvInt("ARCANUM_CREATE_REFILL_PER_MIN", 30),

		// Redis settings
		RedisAddr:           requireEnv("ARCANUM_REDIS_ADDR"),
		RedisUser:           getenv("ARCANUM_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("ARCANUM_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("ARCANUM_REDIS_DB", 0),
		RedisDT:             mustDuration("ARCANUM_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("ARCANUM_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("ARCANUM_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("ARCANUM_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("ARCANUM_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("ARCANUM_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("ARCANUM_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("ARCANUM_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("ARCANUM_REDIS_WARN_THRESHOLD", 3),

		TrustProxy: mustBool("ARCANUM_TRUST_PROXY", false),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
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
