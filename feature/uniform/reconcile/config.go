package reconcile

import "time"

// Config tunes the duplicate-submission guard in front of the engine.
type Config struct {
	// DedupWindowSeconds is how long a completed request blocks an identical one.
	DedupWindowSeconds int `mapstructure:"dedup_window_seconds" default:"10"`
	// CleanupHorizonSeconds is how long request entries are remembered at all.
	CleanupHorizonSeconds int `mapstructure:"cleanup_horizon_seconds" default:"20"`
}

// DedupWindow returns the dedup window as a duration.
func (c Config) DedupWindow() time.Duration {
	return time.Duration(c.DedupWindowSeconds) * time.Second
}

// CleanupHorizon returns the cleanup horizon as a duration.
func (c Config) CleanupHorizon() time.Duration {
	return time.Duration(c.CleanupHorizonSeconds) * time.Second
}
