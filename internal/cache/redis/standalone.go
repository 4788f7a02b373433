package redis

import (
	"time"

	"github.com/ryndalv/skein/internal/app"
	"github.com/ryndalv/skein/internal/cache"
)

// by intention. Used only during application bootstrap.
func init() { // nolint: gochecknoinits
	cache.Register("redis", cache.FactoryFunc(NewStandaloneCache))
}

func NewStandaloneCache(app app.Context, conf map[string]any) (cache.Cache, error) {
	type Config struct {
		baseConfig `mapstructure:",squash"`

		Address string `mapstructure:"address" validate:"required"`
		DB      int    `mapstructure:"db"`
	}

	cfg := Config{
		baseConfig: baseConfig{ClientCache: clientCache{TTL: 5 * time.Minute}},
	} //nolint:gomnd

	if err := decodeConfig(app.Validator(), conf, &cfg); err != nil {
		return nil, err
	}

	opts, err := cfg.clientOptions(app.Watcher())
	if err != nil {
		return nil, err
	}

	opts.InitAddress = []string{cfg.Address}
	opts.SelectDB = cfg.DB

	return newRedisCache(opts, cfg.ClientCache.TTL)
}
