package graphics

import "github.com/richinsley/shadersandbox/inputs"

// Context defines the interface for a window with an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// PollEvents returns the events that arrived since the previous call in
	// arrival order, followed by an UpdateTick and, when a frame can be
	// presented, a RenderTick.
	PollEvents() []inputs.Event
	// EndFrame presents the frame drawn since the last call.
	EndFrame()
	GetFramebufferSize() (int, int)
	// Time returns seconds since the graphics subsystem started.
	Time() float64
}
