package infra

import (
	"context"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/fx"

	"roadwatch.dev/backend/internal/app/appconfig"
)

// Mongo connects to the MongoDB deployment named by conf.DBConnection and
// returns the database reports are kept in. The database name comes from the
// connection string path, falling back to conf.DBName.
func Mongo(conf *appconfig.Config, lc fx.Lifecycle) (*mongo.Database, error) {
	cs, err := connstring.ParseAndValidate(conf.DBConnection)
	if err != nil {
		return nil, errors.Wrap(err, "infra: mongo: invalid connection string")
	}

	ctx, cancel := context.WithTimeout(context.Background(), conf.StoreConnectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.DBConnection))
	if err != nil {
		return nil, errors.Wrap(err, "infra: mongo: failed to create client")
	}

	err = retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), conf.StoreConnectTimeout)
			defer cancel()
			return client.Ping(ctx, readpref.Primary())
		},
		retry.Attempts(conf.StoreConnectAttempts),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Str("evt.name", "infra.mongo.connect.retry").
				Err(err).
				Uint("attempt", n+1).
				Msg("failed to reach mongodb, retrying")
		}),
		retry.Context(context.Background()),
	)
	if err != nil {
		log.Error().Err(err).Msg("infra: mongo: failed to ping database")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	name := cs.Database
	if name == "" {
		name = conf.DBName
	}

	log.Info().
		Str("evt.name", "infra.mongo.connected").
		Str("database", name).
		Msg("connected to mongodb")

	return client.Database(name), nil
}
