// Package state holds the mutable values that change while the sandbox runs:
// the shader clock, play/pause, mouse tracking and the frame rate.
package state

import (
	"time"

	"github.com/richinsley/shadersandbox/inputs"
)

// FrameState is owned by the render loop and mutated only from its event
// phase. None of its methods fail.
type FrameState struct {
	// ElapsedTime is the shader clock in seconds. It only advances while
	// Playing is true.
	ElapsedTime     float64
	Playing         bool
	MousePosition   [2]float64
	MouseButtonDown bool
	FPS             int

	fps FPSCounter
}

// New returns a FrameState with the clock at zero and running.
func New() *FrameState {
	return &FrameState{Playing: true}
}

// OnKeyPress toggles the clock on Space and ignores every other key.
func (s *FrameState) OnKeyPress(key inputs.Key) {
	if key == inputs.KeySpace {
		s.Playing = !s.Playing
	}
}

func (s *FrameState) OnMousePress(button inputs.MouseButton) {
	if button == inputs.MouseLeft {
		s.MouseButtonDown = true
	}
}

func (s *FrameState) OnMouseRelease(button inputs.MouseButton) {
	if button == inputs.MouseLeft {
		s.MouseButtonDown = false
	}
}

// OnCursorMove records the cursor position regardless of button state.
func (s *FrameState) OnCursorMove(x, y float64) {
	s.MousePosition = [2]float64{x, y}
}

// OnUpdateTick advances the clock by dt seconds while playing. The caller
// clamps dt to be non-negative.
func (s *FrameState) OnUpdateTick(dt float64) {
	if s.Playing {
		s.ElapsedTime += dt
	}
}

// TickFPS records a presented frame at now and refreshes FPS.
func (s *FrameState) TickFPS(now time.Duration) int {
	s.FPS = s.fps.Tick(now)
	return s.FPS
}

// Sync copies the state into u for a frame of width x height pixels.
//
// The mouse uniform is only written while the left button is down, so after a
// release it keeps the last position sampled during the drag instead of
// following the cursor or dropping back to zero.
func (s *FrameState) Sync(u *inputs.Uniforms, width, height int) {
	u.Resolution = [3]float32{float32(width), float32(height), 0}
	u.Time = float32(s.ElapsedTime)
	if s.MouseButtonDown {
		u.Mouse[0] = float32(s.MousePosition[0])
		u.Mouse[1] = float32(s.MousePosition[1])
	}
}
