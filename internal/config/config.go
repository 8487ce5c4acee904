package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Postgres struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	SSLMode  string
}

type Kafka struct {
	Brokers []string
	Topic   string
	Group   string
	Workers int
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Config struct {
	HTTPAddr  string
	WarmLimit int

	Pg      Postgres
	Kafka   Kafka
	Breaker Breaker
	Retry   Retry
}

// KafkaEnabled reports whether the broker ingestion path is configured.
// The HTTP API works on its own; Kafka is optional.
func (c Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0 && c.Kafka.Topic != ""
}

// Load fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:  envDefault("HTTP_ADDR", ":3000"),
		WarmLimit: envInt("CACHE_WARM_LIMIT", 1000),

		Pg: Postgres{
			Host:     strings.TrimSpace(os.Getenv("PG_HOST")),
			Port:     strings.TrimSpace(envDefault("PG_PORT", "5432")),
			DB:       strings.TrimSpace(os.Getenv("PG_DB")),
			User:     strings.TrimSpace(os.Getenv("PG_USER")),
			Password: strings.TrimSpace(os.Getenv("PG_PASSWORD")),
			SSLMode:  strings.TrimSpace(envDefault("PG_SSLMODE", "disable")),
		},

		Kafka: Kafka{
			Brokers: splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:   strings.TrimSpace(os.Getenv("KAFKA_TOPIC")),
			Group:   strings.TrimSpace(envDefault("KAFKA_GROUP", "orders-consumer")),
			Workers: envInt("KAFKA_WORKERS", 4),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 5),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 5*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	req := map[string]string{
		"PG_HOST":     c.Pg.Host,
		"PG_DB":       c.Pg.DB,
		"PG_USER":     c.Pg.User,
		"PG_PASSWORD": c.Pg.Password,
	}
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}

	if c.WarmLimit < 0 {
		log.Printf("CACHE_WARM_LIMIT is %d, adjusting to 0", c.WarmLimit)
	}
	if c.Retry.Attempts < 0 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 0", c.Retry.Attempts)
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

// DSN builds a Postgres URL, safely escaping user/pass and query.
func (c Config) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
