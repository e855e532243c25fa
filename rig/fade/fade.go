// Package fade dims scene content around a focused entity. Members are
// registered into groups keyed by the owning entity's ID; when focus lands on
// one entity every other group eases toward a configured backdrop opacity,
// and releasing focus eases everything back to fully opaque.
package fade

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/rig/focus"
	"github.com/google/uuid"
)

// ErrUnknownGroup signals a Register call against a group ID that was never
// created (or was already removed).
var ErrUnknownGroup = errors.New("fade: unknown group")

// Fadeable is any renderable whose opacity the registry can drive. Opacity
// pushes may arrive from worker goroutines, so implementations must be safe
// for concurrent SetOpacity calls with their own rendering.
type Fadeable interface {
	// ID returns the member's stable identifier within its group.
	ID() uuid.UUID

	// SetOpacity applies the eased alpha in [0, 1].
	//
	// Parameters:
	//   - alpha: 1 is fully opaque, lower values dim the member
	SetOpacity(alpha float32)
}

// Registry tracks fade groups and eases their opacities over time. It
// satisfies the rig's scene fader contract, so it can be attached directly
// with rig.WithSceneFader.
type Registry interface {
	// NewGroup creates an empty, fully opaque group.
	//
	// Returns:
	//   - uuid.UUID: the new group's ID
	NewGroup() uuid.UUID

	// Adopt creates a group under a caller-chosen ID, typically a focus
	// target's own ID so FadeAllExcept can match it.
	//
	// Parameters:
	//   - id: the group ID to claim, overwrites nothing if already present
	Adopt(id uuid.UUID)

	// Register adds a member to a group.
	//
	// Parameters:
	//   - group: the group to join
	//   - member: the renderable to drive
	//
	// Returns:
	//   - error: ErrUnknownGroup when the group does not exist
	Register(group uuid.UUID, member Fadeable) error

	// Unregister removes a member from a group. Unknown IDs are ignored.
	//
	// Parameters:
	//   - group: the group to leave
	//   - member: the member's ID
	Unregister(group, member uuid.UUID)

	// GroupAlpha reports a group's current eased opacity.
	//
	// Parameters:
	//   - group: the group to inspect
	//
	// Returns:
	//   - float32: the current alpha
	//   - bool: false when the group does not exist
	GroupAlpha(group uuid.UUID) (float32, bool)

	// FadeAllExcept eases every group except the kept one toward the backdrop
	// opacity; the kept group eases back to fully opaque.
	//
	// Parameters:
	//   - keep: the group left undimmed
	FadeAllExcept(keep uuid.UUID)

	// RestoreAll eases every group back to fully opaque.
	RestoreAll()

	// Advance steps every animating group by dt and pushes the resulting
	// alphas to members. Call once per tick from the update loop.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous tick
	Advance(dt float32)
}

type fadeGroup struct {
	members map[uuid.UUID]Fadeable

	current   float32
	start     float32
	goal      float32
	elapsed   float32
	animating bool
}

// retarget points the group at a new goal opacity, easing from wherever the
// current animation left it.
func (g *fadeGroup) retarget(goal float32) {
	if g.goal == goal && !g.animating && g.current == goal {
		return
	}
	g.start = g.current
	g.goal = goal
	g.elapsed = 0
	g.animating = true
}

type registryImpl struct {
	mu *sync.Mutex

	fadedAlpha float32
	duration   float32
	workers    int

	groups map[uuid.UUID]*fadeGroup
	pool   worker.DynamicWorkerPool
}

var _ Registry = &registryImpl{}
var _ focus.SceneFader = &registryImpl{}

// New creates an empty fade registry.
//
// Parameters:
//   - options: functional options, see the With* helpers
//
// Returns:
//   - Registry: the registry with its worker pool started
//   - error: the first configuration validation failure
func New(options ...Option) (Registry, error) {
	r := &registryImpl{
		mu:         &sync.Mutex{},
		fadedAlpha: 0.15,
		duration:   0.4,
		workers:    max(runtime.NumCPU()-1, 1),
		groups:     make(map[uuid.UUID]*fadeGroup),
	}
	for _, option := range options {
		option(r)
	}

	if r.fadedAlpha < 0 || r.fadedAlpha >= 1 {
		return nil, errors.New("fade: backdrop alpha must be in [0, 1)")
	}
	if r.duration <= 0 {
		return nil, errors.New("fade: duration must be positive")
	}
	if r.workers < 1 {
		return nil, errors.New("fade: worker count must be at least 1")
	}

	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	return r, nil
}

func (r *registryImpl) NewGroup() uuid.UUID {
	id := uuid.New()
	r.Adopt(id)
	return id
}

func (r *registryImpl) Adopt(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[id]; ok {
		return
	}
	r.groups[id] = &fadeGroup{
		members: make(map[uuid.UUID]Fadeable),
		current: 1,
		start:   1,
		goal:    1,
	}
}

func (r *registryImpl) Register(group uuid.UUID, member Fadeable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[group]
	if !ok {
		return ErrUnknownGroup
	}
	g.members[member.ID()] = member
	return nil
}

func (r *registryImpl) Unregister(group, member uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.groups[group]; ok {
		delete(g.members, member)
	}
}

func (r *registryImpl) GroupAlpha(group uuid.UUID) (float32, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[group]
	if !ok {
		return 0, false
	}
	return g.current, true
}

func (r *registryImpl) FadeAllExcept(keep uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, g := range r.groups {
		if id == keep {
			g.retarget(1)
		} else {
			g.retarget(r.fadedAlpha)
		}
	}
}

func (r *registryImpl) RestoreAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.groups {
		g.retarget(1)
	}
}

func (r *registryImpl) Advance(dt float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Per-tick barrier sync via WaitGroup; pool.Wait() blocks until workers
	// idle-exit which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	taskID := 0
	for _, g := range r.groups {
		if !g.animating {
			continue
		}

		g.elapsed += dt
		t := g.elapsed / r.duration
		if t >= 1 {
			g.current = g.goal
			g.animating = false
		} else {
			g.current = common.Lerp(g.start, g.goal, common.SmoothStep(t))
		}

		alpha := g.current
		for _, member := range g.members {
			wg.Add(1)
			mCap := member // capture for closure
			id := taskID
			taskID++
			r.pool.SubmitTask(worker.Task{
				ID: id,
				Do: func() (any, error) {
					defer wg.Done()
					mCap.SetOpacity(alpha)
					return nil, nil
				},
			})
		}
	}
	wg.Wait()
}
