package window

import (
	"fmt"
	"runtime"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up/zoom in, negative = down/zoom out)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetPrimaryMouseDownCallback sets the callback for left mouse button press.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetPrimaryMouseDownCallback(callback func(x, y int32))

	// SetPrimaryMouseUpCallback sets the callback for left mouse button release.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetPrimaryMouseUpCallback(callback func(x, y int32))

	// SetSecondaryMouseDownCallback sets the callback for right mouse button press.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetSecondaryMouseDownCallback(callback func(x, y int32))

	// SetSecondaryMouseUpCallback sets the callback for right mouse button release.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetSecondaryMouseUpCallback(callback func(x, y int32))

	// SetMouseMoveCallback sets the callback for mouse movement.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetMouseMoveCallback(callback func(x, y int32))

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// rigWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type rigWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events.
	// Positive delta = scroll up (zoom in), negative = scroll down (zoom out).
	onScroll func(delta float32)

	// onKeyDown is called when a key is pressed. Escape is delivered here
	// like any other key; the camera rig decides what it means.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released.
	onKeyUp func(keyCode uint32)

	// onPrimaryMouseDown is called when the left mouse button is pressed.
	onPrimaryMouseDown func(x, y int32)

	// onPrimaryMouseUp is called when the left mouse button is released.
	onPrimaryMouseUp func(x, y int32)

	// onSecondaryMouseDown is called when the right mouse button is pressed.
	onSecondaryMouseDown func(x, y int32)

	// onSecondaryMouseUp is called when the right mouse button is released.
	onSecondaryMouseUp func(x, y int32)

	// onMouseMove is called when the mouse moves within the window.
	onMouseMove func(x, y int32)
}

var _ Window = &rigWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (not yet spawned)
func NewWindow(options ...WindowBuilderOption) Window {
	w := &rigWindow{
		title:     "Default Window Title",
		maxWidth:  1600,
		maxHeight: 1200,
		minWidth:  600,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *rigWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *rigWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *rigWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *rigWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *rigWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *rigWindow) SetPrimaryMouseDownCallback(callback func(x, y int32)) {
	w.onPrimaryMouseDown = callback
}

func (w *rigWindow) SetPrimaryMouseUpCallback(callback func(x, y int32)) {
	w.onPrimaryMouseUp = callback
}

func (w *rigWindow) SetSecondaryMouseDownCallback(callback func(x, y int32)) {
	w.onSecondaryMouseDown = callback
}

func (w *rigWindow) SetSecondaryMouseUpCallback(callback func(x, y int32)) {
	w.onSecondaryMouseUp = callback
}

func (w *rigWindow) SetMouseMoveCallback(callback func(x, y int32)) {
	w.onMouseMove = callback
}

func (w *rigWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *rigWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *rigWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *rigWindow) Width() int {
	return w.width
}

func (w *rigWindow) Height() int {
	return w.height
}
