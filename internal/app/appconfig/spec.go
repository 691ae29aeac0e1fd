package appconfig

import (
	"time"

	"roadwatch.dev/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// Host is the host the service listens on. Leaving this empty listens on all interfaces.
	Host string `split_words:"true"`

	// Port is the port the service listens on. Falls back to the unprefixed PORT variable.
	Port int `envconfig:"PORT" required:"true" default:"3000"`

	// DBConnection is the connection string of the report store. Its scheme selects the adapter:
	// mongodb:// and mongodb+srv:// use MongoDB, postgres:// and postgresql:// use PostgreSQL,
	// and memory:// keeps reports in process memory. Falls back to the unprefixed DB_CONNECTION variable.
	DBConnection string `envconfig:"DB_CONNECTION" required:"true"`

	// DBName is the MongoDB database name used when the connection string carries no database path.
	DBName string `split_words:"true" default:"roadwatch"`

	// StoreConnectAttempts is how many times the store connection is attempted at boot before giving up.
	StoreConnectAttempts uint `split_words:"true" default:"3"`

	// StoreConnectTimeout bounds a single connection attempt.
	StoreConnectTimeout time.Duration `split_words:"true" default:"10s"`

	// StoreOpTimeout bounds every store operation issued while serving a request.
	StoreOpTimeout time.Duration `split_words:"true" default:"8s"`

	PostgresMaxOpenConns int `split_words:"true" default:"10"`
	PostgresMaxIdleConns int `split_words:"true" default:"2"`

	BunDebugVerbose bool `split_words:"true"`

	// BodyLimit is the maximum accepted request body size in bytes. Reports may carry a base64 photo.
	BodyLimit int `split_words:"true" default:"16777216"`

	// RedisURL is the URL of the Redis server backing the rate limiter. Leaving this empty keeps
	// limiter state in memory. See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL.
	RedisURL string `split_words:"true"`

	// RateLimitMax is the number of report submissions accepted per client IP within RateLimitWindow.
	// Zero disables the limiter.
	RateLimitMax int `split_words:"true" default:"60"`

	RateLimitWindow time.Duration `split_words:"true" default:"1m"`

	// NatsURL is the URL of the NATS server receiving report.created events. Leaving this empty
	// disables event publishing.
	NatsURL string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// DevMode to indicate development mode. When true, logs are emitted at trace level and pprof is mounted.
	DevMode bool `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`
}

type Config struct {
	// ConfigSpec holds the environment-derived settings injected into Config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
