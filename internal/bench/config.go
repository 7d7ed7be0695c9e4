package bench

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config controls how long each benchmark runs.
type Config struct {
	MinEpochIterations int
	Epochs             int
	MinEpochTime       time.Duration
	Debug              bool
	// Profile is the CPU profile file, empty for none.
	Profile string
}

// DefaultConfig returns the harness defaults with the given minimum
// iterations per epoch.
func DefaultConfig(minEpochIterations int) Config {
	return Config{
		MinEpochIterations: minEpochIterations,
		Epochs:             11,
		MinEpochTime:       time.Millisecond,
	}
}

// FromEnv applies DEBUG, PROFILE, MIN_EPOCH_ITERS and EPOCHS on top of c.
func (c Config) FromEnv() (Config, error) {
	c.Debug = c.Debug || os.Getenv("DEBUG") != ""
	if os.Getenv("PROFILE") != "" {
		c.Profile = "cpu.out"
	}
	for _, v := range []struct {
		env string
		dst *int
	}{
		{"MIN_EPOCH_ITERS", &c.MinEpochIterations},
		{"EPOCHS", &c.Epochs},
	} {
		s := os.Getenv(v.env)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return c, fmt.Errorf("%s: %w", v.env, err)
		}
		*v.dst = n
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.MinEpochIterations <= 0 {
		return fmt.Errorf("min epoch iterations must be positive, got %d", c.MinEpochIterations)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d", c.Epochs)
	}
	if c.MinEpochTime < 0 {
		return errors.New("min epoch time must not be negative")
	}
	return nil
}
