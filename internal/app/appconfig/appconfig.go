package appconfig

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"roadwatch.dev/backend/internal/app/appcontext"
)

const envPrefix = "roadwatch"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(envPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(envPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if strings.TrimSpace(config.DBConnection) == "" {
		return nil, errors.New("failed to parse configuration: DB_CONNECTION must not be empty")
	}
	// retry-go treats zero attempts as unlimited
	if config.StoreConnectAttempts < 1 {
		return nil, errors.New("failed to parse configuration: STORE_CONNECT_ATTEMPTS must be at least 1")
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}

// ListenAddress is the host:port pair the HTTP server binds to.
func (c *Config) ListenAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
