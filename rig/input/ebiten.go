package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SnapshotSource builds per-tick Snapshots from ebiten's polled input state,
// for rigs hosted inside an ebiten game loop. Pointer deltas are computed
// against the cursor position observed on the previous call, so call Snapshot
// exactly once per Update.
type SnapshotSource struct {
	lastX, lastY int
	primed       bool
}

// Snapshot polls ebiten and returns this tick's input snapshot.
// The first call reports a zero pointer delta; it only primes the cursor
// baseline.
//
// Returns:
//   - Snapshot: the raw input state for this tick
func (s *SnapshotSource) Snapshot() Snapshot {
	x, y := ebiten.CursorPosition()

	var snap Snapshot
	if s.primed {
		snap.PointerDelta = mgl32.Vec2{float32(x - s.lastX), float32(y - s.lastY)}
	}
	s.lastX, s.lastY = x, y
	s.primed = true

	_, wheelY := ebiten.Wheel()
	snap.ScrollDelta = float32(wheelY)

	snap.PrimaryDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	snap.PrimaryHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	snap.PrimaryUp = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	snap.SecondaryDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	snap.SecondaryHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	snap.SecondaryUp = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)

	snap.EscapePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	return snap
}
