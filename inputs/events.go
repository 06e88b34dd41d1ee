package inputs

// Event is a single report from the host window: an input action, the
// passage of time, or a request to present a frame.
type Event interface{}

// KeyPress is a keyboard key going down. Key repeats are not reported.
type KeyPress struct {
	Key Key
}

type MousePress struct {
	Button MouseButton
}

type MouseRelease struct {
	Button MouseButton
}

// CursorMove carries the cursor position in window coordinates, origin at the
// top-left corner. The host may coalesce several physical moves into one.
type CursorMove struct {
	X, Y float64
}

// UpdateTick reports that DT seconds of wall-clock time have passed since the
// previous UpdateTick.
type UpdateTick struct {
	DT float64
}

// RenderTick reports that the host is ready to present a new frame.
type RenderTick struct{}
