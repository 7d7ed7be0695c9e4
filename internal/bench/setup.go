package bench

// Setup applies cfg's debug and profiling switches. The returned function
// must be called before the program exits.
func Setup(cfg Config) (func(), error) {
	Debug = cfg.Debug
	if cfg.Profile == "" {
		return func() {}, nil
	}
	stop, err := StartProfile(cfg.Profile)
	if err != nil {
		return nil, err
	}
	Debugf("writing CPU profile to %s", cfg.Profile)
	return stop, nil
}
