package infra

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"roadwatch.dev/backend/internal/app/appconfig"
	"roadwatch.dev/backend/internal/constant"
	"roadwatch.dev/backend/internal/repo"
)

var ErrUnsupportedStore = errors.New("unsupported report store scheme")

// StoreScheme returns the lower-cased scheme of a store connection string.
func StoreScheme(conn string) string {
	scheme, _, found := strings.Cut(strings.TrimSpace(conn), "://")
	if !found {
		return ""
	}
	return strings.ToLower(scheme)
}

// ReportStore selects the report store adapter by the scheme of conf.DBConnection.
func ReportStore(conf *appconfig.Config, lc fx.Lifecycle) (repo.ReportStore, error) {
	scheme := StoreScheme(conf.DBConnection)

	logger := log.With().Str("component", "infra.store").Str("scheme", scheme).Logger()

	switch scheme {
	case "mongodb", "mongodb+srv":
		db, err := Mongo(conf, lc)
		if err != nil {
			return nil, err
		}
		store := repo.NewMongoReport(db.Collection(constant.ReportCollection), conf.StoreOpTimeout)
		if err := store.EnsureIndexes(context.Background()); err != nil {
			logger.Warn().Err(err).Str("evt.name", "infra.store.index.failed").Msg("failed to ensure report indexes")
		}
		logger.Info().Str("evt.name", "infra.store.selected").Msg("using mongodb report store")
		return store, nil

	case "postgres", "postgresql":
		db, err := Postgres(conf, lc)
		if err != nil {
			return nil, err
		}
		store := repo.NewPostgresReport(db, conf.StoreOpTimeout)
		if err := store.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
		logger.Info().Str("evt.name", "infra.store.selected").Msg("using postgres report store")
		return store, nil

	case "memory":
		logger.Warn().Str("evt.name", "infra.store.selected").Msg("using in-memory report store: reports are lost on restart")
		return repo.NewMemoryReport(), nil
	}

	return nil, errors.Wrapf(ErrUnsupportedStore, "%q", scheme)
}
