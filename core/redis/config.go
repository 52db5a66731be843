package redis

// Config holds configuration for the optional Redis connection.
type Config struct {
	// Addr is host:port of the Redis server. Empty keeps the idempotency cache in-process.
	Addr string `mapstructure:"addr" default:""`
	// Password authenticates against Redis.
	Password string `mapstructure:"password" default:""`
	// DB selects the logical database.
	DB int `mapstructure:"db" default:"0"`
	// PoolSize is the maximum number of socket connections.
	PoolSize int `mapstructure:"pool_size" default:"20"`
}

// Enabled reports whether a Redis address is configured.
func (c Config) Enabled() bool {
	return c.Addr != ""
}
