package stock

import "time"

// Config controls the forecast snapshot.
type Config struct {
	// TTLSeconds is how long a built snapshot is served from memory. 0 disables caching.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"30"`
	// Object is the storage key the workbook is published under.
	Object string `mapstructure:"object" default:"forecast/stock_snapshot.xlsx"`
}

// TTL returns the cache lifetime as a duration.
func (c Config) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
