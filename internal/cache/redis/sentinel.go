package redis

import (
	"time"

	"github.com/redis/rueidis"

	"github.com/ryndalv/skein/internal/app"
	"github.com/ryndalv/skein/internal/cache"
)

// by intention. Used only during application bootstrap.
func init() { // nolint: gochecknoinits
	cache.Register("redis-sentinel", cache.FactoryFunc(NewSentinelCache))
}

func NewSentinelCache(app app.Context, conf map[string]any) (cache.Cache, error) {
	type Config struct {
		baseConfig `mapstructure:",squash"`

		Nodes  []string `mapstructure:"nodes"  validate:"gt=0,dive,required"`
		Master string   `mapstructure:"master" validate:"required"`
		DB     int      `mapstructure:"db"`
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

	opts.InitAddress = cfg.Nodes
	opts.ShuffleInit = true
	opts.SelectDB = cfg.DB
	opts.Sentinel = rueidis.SentinelOption{MasterSet: cfg.Master}

	if cfg.Credentials != nil {
		creds := cfg.Credentials.get()
		opts.Sentinel.Username = creds.Username
		opts.Sentinel.Password = creds.Password
	}

	return newRedisCache(opts, cfg.ClientCache.TTL)
}
