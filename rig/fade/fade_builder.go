package fade

// Option configures a Registry during New.
type Option func(*registryImpl)

// WithBackdropAlpha sets the opacity dimmed groups ease toward. Must be in
// [0, 1).
//
// Parameters:
//   - alpha: the dimmed opacity
//
// Returns:
//   - Option: the configured option
func WithBackdropAlpha(alpha float32) Option {
	return func(r *registryImpl) {
		r.fadedAlpha = alpha
	}
}

// WithDuration sets how long each fade takes in seconds. Must be positive.
//
// Parameters:
//   - seconds: the fade duration
//
// Returns:
//   - Option: the configured option
func WithDuration(seconds float32) Option {
	return func(r *registryImpl) {
		r.duration = seconds
	}
}

// WithWorkers sets the opacity push worker count. Defaults to NumCPU-1.
//
// Parameters:
//   - workers: the pool size, must be at least 1
//
// Returns:
//   - Option: the configured option
func WithWorkers(workers int) Option {
	return func(r *registryImpl) {
		r.workers = workers
	}
}
