package fade

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/uuid"
)

type fakeMember struct {
	mu   sync.Mutex
	id   uuid.UUID
	last float32
	set  int
}

func newFakeMember() *fakeMember {
	return &fakeMember{id: uuid.New(), last: 1}
}

func (f *fakeMember) ID() uuid.UUID { return f.id }

func (f *fakeMember) SetOpacity(alpha float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last = alpha
	f.set++
}

func (f *fakeMember) opacity() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *fakeMember) pushes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}

func newTestRegistry(t *testing.T, options ...Option) Registry {
	t.Helper()
	r, err := New(append([]Option{WithWorkers(2)}, options...)...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name    string
		options []Option
	}{
		{"alpha too high", []Option{WithBackdropAlpha(1)}},
		{"negative alpha", []Option{WithBackdropAlpha(-0.1)}},
		{"zero duration", []Option{WithDuration(0)}},
		{"zero workers", []Option{WithWorkers(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.options...); err == nil {
				t.Fatal("expected construction to fail")
			}
		})
	}
}

func TestRegisterUnknownGroup(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Register(uuid.New(), newFakeMember()); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
}

func TestFadeAllExceptReachesBackdropAlpha(t *testing.T) {
	r := newTestRegistry(t, WithBackdropAlpha(0.2), WithDuration(0.5))

	kept := r.NewGroup()
	dimmed := r.NewGroup()
	keptMember := newFakeMember()
	dimmedMember := newFakeMember()
	if err := r.Register(kept, keptMember); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(dimmed, dimmedMember); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	r.FadeAllExcept(kept)
	for i := 0; i < 5; i++ {
		r.Advance(0.1)
	}

	if got, _ := r.GroupAlpha(dimmed); got != 0.2 {
		t.Errorf("expected dimmed group to land exactly at 0.2, got %v", got)
	}
	if got, _ := r.GroupAlpha(kept); got != 1 {
		t.Errorf("expected kept group to stay at 1, got %v", got)
	}
	if got := dimmedMember.opacity(); got != 0.2 {
		t.Errorf("expected dimmed member opacity 0.2, got %v", got)
	}
}

func TestFadeEasesThroughMidpoint(t *testing.T) {
	r := newTestRegistry(t, WithBackdropAlpha(0.2), WithDuration(1))

	group := r.NewGroup()
	member := newFakeMember()
	if err := r.Register(group, member); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	r.FadeAllExcept(uuid.New())
	r.Advance(0.5)

	// SmoothStep(0.5) is exactly 0.5, so the midpoint alpha is the average.
	if got, _ := r.GroupAlpha(group); math.Abs(float64(got-0.6)) > 1e-6 {
		t.Fatalf("expected midpoint alpha 0.6, got %v", got)
	}

	// Quarter point lands below the linear value since the ease starts slow.
	r2 := newTestRegistry(t, WithBackdropAlpha(0.2), WithDuration(1))
	g2 := r2.NewGroup()
	r2.FadeAllExcept(uuid.New())
	r2.Advance(0.25)
	got, _ := r2.GroupAlpha(g2)
	linear := float32(1 - 0.25*0.8)
	if got <= linear {
		t.Fatalf("expected eased alpha above linear %v (slow start), got %v", linear, got)
	}
}

func TestRestoreAllReturnsToOpaque(t *testing.T) {
	r := newTestRegistry(t, WithBackdropAlpha(0.1), WithDuration(0.2))

	group := r.NewGroup()
	member := newFakeMember()
	if err := r.Register(group, member); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	r.FadeAllExcept(uuid.New())
	r.Advance(0.2)
	if got, _ := r.GroupAlpha(group); got != 0.1 {
		t.Fatalf("expected faded alpha 0.1, got %v", got)
	}

	r.RestoreAll()
	r.Advance(0.2)
	if got, _ := r.GroupAlpha(group); got != 1 {
		t.Fatalf("expected restored alpha 1, got %v", got)
	}
	if got := member.opacity(); got != 1 {
		t.Fatalf("expected member restored to 1, got %v", got)
	}
}

func TestAdoptMatchesTargetID(t *testing.T) {
	r := newTestRegistry(t, WithBackdropAlpha(0.3), WithDuration(0.2))

	targetID := uuid.New()
	r.Adopt(targetID)
	other := r.NewGroup()

	r.FadeAllExcept(targetID)
	r.Advance(0.2)

	if got, _ := r.GroupAlpha(targetID); got != 1 {
		t.Errorf("expected adopted group kept at 1, got %v", got)
	}
	if got, _ := r.GroupAlpha(other); got != 0.3 {
		t.Errorf("expected other group dimmed to 0.3, got %v", got)
	}
}

func TestUnregisterStopsPushes(t *testing.T) {
	r := newTestRegistry(t, WithDuration(0.2))

	group := r.NewGroup()
	member := newFakeMember()
	if err := r.Register(group, member); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	r.FadeAllExcept(uuid.New())
	r.Advance(0.1)
	before := member.pushes()
	if before == 0 {
		t.Fatal("expected at least one opacity push before unregistering")
	}

	r.Unregister(group, member.ID())
	r.Advance(0.1)
	if got := member.pushes(); got != before {
		t.Fatalf("expected no pushes after unregistering, got %d extra", got-before)
	}
}

func TestIdleGroupsGetNoPushes(t *testing.T) {
	r := newTestRegistry(t)

	group := r.NewGroup()
	member := newFakeMember()
	if err := r.Register(group, member); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	r.Advance(0.1)
	r.Advance(0.1)
	if got := member.pushes(); got != 0 {
		t.Fatalf("expected no pushes for a group at rest, got %d", got)
	}
}
