package lighting

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-cam/rig/focus"
	"github.com/Carmen-Shannon/oxy-cam/rig/orbital"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type stubTarget struct {
	id uuid.UUID
}

func (s *stubTarget) ID() uuid.UUID                    { return s.id }
func (s *stubTarget) FocusPivot() mgl32.Vec3           { return mgl32.Vec3{} }
func (s *stubTarget) DockPose() (orbital.Pose, bool)   { return orbital.Pose{}, false }
func (s *stubTarget) LockedLookAt() (mgl32.Vec3, bool) { return mgl32.Vec3{}, false }

var _ focus.Target = &stubTarget{}

func newTestMood(t *testing.T, options ...MoodOption) Mood {
	t.Helper()
	m, err := NewMood(options...)
	if err != nil {
		t.Fatalf("NewMood failed: %v", err)
	}
	return m
}

func TestNewMoodValidation(t *testing.T) {
	if _, err := NewMood(WithDimFactor(1)); err == nil {
		t.Error("expected dim factor 1 to fail")
	}
	if _, err := NewMood(WithDimFactor(-0.1)); err == nil {
		t.Error("expected negative dim factor to fail")
	}
	if _, err := NewMood(WithEaseDuration(0)); err == nil {
		t.Error("expected zero duration to fail")
	}
}

func TestLightBuilder(t *testing.T) {
	l := NewLight(WithColor(1, 0.5, 0.25), WithIntensity(3), WithEnabled(false))
	if l.Color() != [3]float32{1, 0.5, 0.25} {
		t.Errorf("unexpected color %v", l.Color())
	}
	if l.Intensity() != 3 {
		t.Errorf("unexpected intensity %v", l.Intensity())
	}
	if l.Enabled() {
		t.Error("expected light to start disabled")
	}
}

func TestSceneLightsDimAndRestore(t *testing.T) {
	m := newTestMood(t, WithDimFactor(0.25), WithEaseDuration(0.5))
	key := NewLight(WithIntensity(4))
	fill := NewLight(WithIntensity(2))
	m.AddSceneLight(key)
	m.AddSceneLight(fill)

	m.OnFocusEntered(&stubTarget{id: uuid.New()})
	for i := 0; i < 5; i++ {
		m.Advance(0.1)
	}
	if got := key.Intensity(); got != 1 {
		t.Errorf("expected key light dimmed to 1 (4 * 0.25), got %v", got)
	}
	if got := fill.Intensity(); got != 0.5 {
		t.Errorf("expected fill light dimmed to 0.5, got %v", got)
	}

	m.OnFocusExited()
	for i := 0; i < 5; i++ {
		m.Advance(0.1)
	}
	if got := key.Intensity(); got != 4 {
		t.Errorf("expected key light restored to 4, got %v", got)
	}
	if got := fill.Intensity(); got != 2 {
		t.Errorf("expected fill light restored to 2, got %v", got)
	}
}

func TestDimEasesThroughMidpoint(t *testing.T) {
	m := newTestMood(t, WithDimFactor(0.5), WithEaseDuration(1))
	l := NewLight(WithIntensity(2))
	m.AddSceneLight(l)

	m.OnFocusEntered(&stubTarget{id: uuid.New()})
	m.Advance(0.5)

	// Easing from 2 to 1 with SmoothStep(0.5) = 0.5 lands at 1.5.
	if got := l.Intensity(); math.Abs(float64(got-1.5)) > 1e-6 {
		t.Fatalf("expected midpoint intensity 1.5, got %v", got)
	}
}

func TestAccentBrightensOnlyForItsEntity(t *testing.T) {
	m := newTestMood(t, WithEaseDuration(0.2))
	focusedID := uuid.New()
	otherID := uuid.New()

	focusedAccent := NewLight(WithIntensity(5))
	otherAccent := NewLight(WithIntensity(5))
	if err := m.AddAccent(focusedID, focusedAccent); err != nil {
		t.Fatalf("AddAccent failed: %v", err)
	}
	if err := m.AddAccent(otherID, otherAccent); err != nil {
		t.Fatalf("AddAccent failed: %v", err)
	}

	// Accents start extinguished.
	if focusedAccent.Intensity() != 0 || otherAccent.Intensity() != 0 {
		t.Fatal("expected accents to start at zero intensity")
	}

	m.OnFocusEntered(&stubTarget{id: focusedID})
	m.Advance(0.2)
	if got := focusedAccent.Intensity(); got != 5 {
		t.Errorf("expected focused accent at base 5, got %v", got)
	}
	if got := otherAccent.Intensity(); got != 0 {
		t.Errorf("expected other accent to stay dark, got %v", got)
	}

	m.OnFocusExited()
	m.Advance(0.2)
	if got := focusedAccent.Intensity(); got != 0 {
		t.Errorf("expected accent extinguished after exit, got %v", got)
	}
}

func TestDuplicateAccentRejected(t *testing.T) {
	m := newTestMood(t)
	id := uuid.New()
	if err := m.AddAccent(id, NewLight()); err != nil {
		t.Fatalf("AddAccent failed: %v", err)
	}
	if err := m.AddAccent(id, NewLight()); !errors.Is(err, ErrDuplicateAccent) {
		t.Fatalf("expected ErrDuplicateAccent, got %v", err)
	}
}

func TestRetargetMidEase(t *testing.T) {
	m := newTestMood(t, WithDimFactor(0.5), WithEaseDuration(1))
	l := NewLight(WithIntensity(2))
	m.AddSceneLight(l)

	// Exit halfway through the dim: the restore eases from wherever the dim
	// left off, not from the dimmed goal.
	m.OnFocusEntered(&stubTarget{id: uuid.New()})
	m.Advance(0.5)
	mid := l.Intensity()
	if mid >= 2 || mid <= 1 {
		t.Fatalf("expected intensity strictly between dim and base, got %v", mid)
	}

	m.OnFocusExited()
	m.Advance(0.25)
	if got := l.Intensity(); got <= mid || got >= 2 {
		t.Fatalf("expected restore to ease upward from %v, got %v", mid, got)
	}
	m.Advance(0.75)
	if got := l.Intensity(); got != 2 {
		t.Fatalf("expected full restore to 2, got %v", got)
	}
}
