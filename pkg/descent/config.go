package descent

// Config holds all parameters for a gradient-descent run.
type Config struct {
	Rate      float64 // learning rate
	Steps     int     // update step budget
	Start     float64 // initial input
	Maximize  bool    // ascend instead of descend
	Tolerance float64 // stop once |f'(x)| falls at or below this
	Format    string  // "text" or "json"
	Verbose   bool    // report every step
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Rate:      0.1,
		Steps:     100,
		Start:     0,
		Tolerance: 1e-9,
		Format:    "text",
		Verbose:   false,
	}
}
