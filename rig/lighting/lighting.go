// Package lighting drives scene light intensities in response to focus
// changes: registered scene lights dim to a fraction of their base intensity
// while an entity is focused, and a per-entity accent light brightens over
// the focused entity. All intensity changes ease smoothly.
package lighting

import (
	"errors"
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/rig/focus"
	"github.com/google/uuid"
)

// ErrDuplicateAccent signals that an accent light was already registered for
// the same entity.
var ErrDuplicateAccent = errors.New("lighting: accent already registered for entity")

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	color     [3]float32
	intensity float32
	enabled   bool
}

// Light is a dimmable light source the mood controller can drive. Hosts with
// their own light types can implement this directly; NewLight provides a
// standalone value for hosts that just need something to bind shader uniforms
// from.
type Light interface {
	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light is active for rendering.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light with sensible defaults and any provided
// options applied.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		color:     [3]float32{1, 1, 1},
		intensity: 1.0,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// lightState tracks one driven light's base intensity and its current ease.
type lightState struct {
	light Light
	base  float32

	current   float32
	start     float32
	goal      float32
	elapsed   float32
	animating bool
}

func (s *lightState) retarget(goal float32) {
	if s.goal == goal && !s.animating && s.current == goal {
		return
	}
	s.start = s.current
	s.goal = goal
	s.elapsed = 0
	s.animating = true
}

// Mood eases scene and accent light intensities around focus changes. It
// satisfies the rig's mood lighting contract, so it can be attached directly
// with rig.WithMoodLighting.
type Mood interface {
	// AddSceneLight registers a light dimmed while any entity is focused.
	// The light's intensity at registration time becomes its base.
	//
	// Parameters:
	//   - light: the light to drive
	AddSceneLight(light Light)

	// AddAccent registers a light brightened while its entity is focused.
	// The light's intensity at registration becomes its focused brightness;
	// it is driven to zero immediately.
	//
	// Parameters:
	//   - entity: the focus target's ID
	//   - light: the accent light
	//
	// Returns:
	//   - error: ErrDuplicateAccent when the entity already has an accent
	AddAccent(entity uuid.UUID, light Light) error

	// OnFocusEntered dims scene lights and brightens the target's accent.
	//
	// Parameters:
	//   - target: the newly focused entity
	OnFocusEntered(target focus.Target)

	// OnFocusExited restores scene lights and extinguishes accents.
	OnFocusExited()

	// Advance steps every animating light by dt. Call once per tick.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous tick
	Advance(dt float32)
}

type moodImpl struct {
	mu *sync.Mutex

	dimFactor float32
	duration  float32

	scene   []*lightState
	accents map[uuid.UUID]*lightState
	focused *uuid.UUID
}

var _ Mood = &moodImpl{}
var _ focus.MoodLighting = &moodImpl{}

// NewMood creates a mood controller with all lights at their base state.
//
// Parameters:
//   - options: functional options, see the With* helpers
//
// Returns:
//   - Mood: the controller
//   - error: the first configuration validation failure
func NewMood(options ...MoodOption) (Mood, error) {
	m := &moodImpl{
		mu:        &sync.Mutex{},
		dimFactor: 0.35,
		duration:  0.4,
		accents:   make(map[uuid.UUID]*lightState),
	}
	for _, option := range options {
		option(m)
	}

	if m.dimFactor < 0 || m.dimFactor >= 1 {
		return nil, errors.New("lighting: dim factor must be in [0, 1)")
	}
	if m.duration <= 0 {
		return nil, errors.New("lighting: duration must be positive")
	}
	return m, nil
}

func (m *moodImpl) AddSceneLight(light Light) {
	m.mu.Lock()
	defer m.mu.Unlock()
	base := light.Intensity()
	m.scene = append(m.scene, &lightState{
		light:   light,
		base:    base,
		current: base,
		start:   base,
		goal:    base,
	})
}

func (m *moodImpl) AddAccent(entity uuid.UUID, light Light) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accents[entity]; ok {
		return ErrDuplicateAccent
	}
	// Accents start dark and only brighten while their entity holds focus.
	state := &lightState{light: light, base: light.Intensity()}
	light.SetIntensity(0)
	m.accents[entity] = state
	return nil
}

func (m *moodImpl) OnFocusEntered(target focus.Target) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.scene {
		s.retarget(s.base * m.dimFactor)
	}
	id := target.ID()
	m.focused = &id
	if accent, ok := m.accents[id]; ok {
		accent.retarget(accent.base)
	}
}

func (m *moodImpl) OnFocusExited() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.scene {
		s.retarget(s.base)
	}
	for _, accent := range m.accents {
		accent.retarget(0)
	}
	m.focused = nil
}

func (m *moodImpl) Advance(dt float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.scene {
		m.advanceState(s, dt)
	}
	for _, s := range m.accents {
		m.advanceState(s, dt)
	}
}

// advanceState steps one light's ease. Caller must hold the mutex.
func (m *moodImpl) advanceState(s *lightState, dt float32) {
	if !s.animating {
		return
	}
	s.elapsed += dt
	t := s.elapsed / m.duration
	if t >= 1 {
		s.current = s.goal
		s.animating = false
	} else {
		s.current = common.Lerp(s.start, s.goal, common.SmoothStep(t))
	}
	s.light.SetIntensity(s.current)
}
