// README: Fare model loading from the configured artifact source.
package infra

import (
	"context"
	"fmt"
	"net/http"

	"farecast/internal/config"
	"farecast/internal/modules/features"
	"farecast/internal/modules/predictor"
)

// LoadModel loads the artifact named by cfg. The Postgres pool is only
// held for the duration of the load.
func LoadModel(ctx context.Context, cfg config.Config) (*predictor.Model, error) {
	opts := []predictor.Option{
		predictor.WithHTTPClient(&http.Client{Timeout: cfg.Model.RemoteTimeout}),
	}
	columns := features.Columns[:]

	switch cfg.Model.Source {
	case config.ModelSourceFile:
		return predictor.LoadFile(cfg.Model.Path, columns, opts...)
	case config.ModelSourcePostgres:
		pool, err := NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return predictor.NewStore(pool).LoadLatest(ctx, cfg.Model.Name, columns, opts...)
	default:
		return nil, fmt.Errorf("unknown model source %q", cfg.Model.Source)
	}
}
