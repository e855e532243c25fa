package lighting

// LightBuilderOption configures a Light during NewLight.
type LightBuilderOption func(*lightImpl)

// WithColor sets the light's RGB color.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - LightBuilderOption: the configured option
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithIntensity sets the light's scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: the configured option
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithEnabled sets whether the light starts active.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - LightBuilderOption: the configured option
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

// MoodOption configures a Mood controller during NewMood.
type MoodOption func(*moodImpl)

// WithDimFactor sets the fraction of base intensity scene lights dim to while
// focus is held. Must be in [0, 1).
//
// Parameters:
//   - factor: the dim multiplier
//
// Returns:
//   - MoodOption: the configured option
func WithDimFactor(factor float32) MoodOption {
	return func(m *moodImpl) {
		m.dimFactor = factor
	}
}

// WithEaseDuration sets how long intensity eases take in seconds. Must be
// positive.
//
// Parameters:
//   - seconds: the ease duration
//
// Returns:
//   - MoodOption: the configured option
func WithEaseDuration(seconds float32) MoodOption {
	return func(m *moodImpl) {
		m.duration = seconds
	}
}
