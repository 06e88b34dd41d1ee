// Package sandbox runs the interactive loop: it drains host events into the
// frame state and, when a frame is due, draws the shader pass followed by the
// HUD.
package sandbox

import (
	"fmt"
	"strconv"
	"time"

	"github.com/richinsley/shadersandbox/inputs"
	"github.com/richinsley/shadersandbox/state"
)

// Host is the window the loop runs against. graphics.Context satisfies it.
type Host interface {
	ShouldClose() bool
	PollEvents() []inputs.Event
	GetFramebufferSize() (int, int)
	EndFrame()
	Time() float64
}

// Scene clears the framebuffer and draws the shader quad with u bound.
type Scene interface {
	RenderFrame(u *inputs.Uniforms) error
}

// HUD draws the two overlay labels on top of the shader pass.
type HUD interface {
	Draw(fpsText, timerText string, width, height int) error
}

// Recorder receives each finished frame before it is presented.
type Recorder interface {
	Capture(width, height int)
}

type Driver struct {
	host     Host
	scene    Scene
	hud      HUD
	recorder Recorder

	state    *state.FrameState
	uniforms inputs.Uniforms
}

func NewDriver(host Host, scene Scene, hud HUD, st *state.FrameState) *Driver {
	return &Driver{
		host:  host,
		scene: scene,
		hud:   hud,
		state: st,
	}
}

// SetRecorder installs r. A nil r disables recording.
func (d *Driver) SetRecorder(r Recorder) {
	d.recorder = r
}

// Uniforms returns the values bound by the most recent frame.
func (d *Driver) Uniforms() inputs.Uniforms {
	return d.uniforms
}

// Run loops until the host asks to close. Each iteration applies every
// pending event in order and then renders at most one frame.
func (d *Driver) Run() error {
	for !d.host.ShouldClose() {
		renderDue := false
		for _, ev := range d.host.PollEvents() {
			if _, ok := ev.(inputs.RenderTick); ok {
				renderDue = true
				continue
			}
			d.dispatch(ev)
		}

		if !renderDue || d.host.ShouldClose() {
			continue
		}
		if err := d.render(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) dispatch(ev inputs.Event) {
	switch e := ev.(type) {
	case inputs.KeyPress:
		d.state.OnKeyPress(e.Key)
	case inputs.MousePress:
		d.state.OnMousePress(e.Button)
	case inputs.MouseRelease:
		d.state.OnMouseRelease(e.Button)
	case inputs.CursorMove:
		d.state.OnCursorMove(e.X, e.Y)
	case inputs.UpdateTick:
		dt := e.DT
		if dt < 0 {
			dt = 0
		}
		d.state.OnUpdateTick(dt)
	}
}

func (d *Driver) render() error {
	width, height := d.host.GetFramebufferSize()
	d.state.Sync(&d.uniforms, width, height)

	if err := d.scene.RenderFrame(&d.uniforms); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}

	now := time.Duration(d.host.Time() * float64(time.Second))
	fps := d.state.TickFPS(now)

	timer := strconv.Itoa(int(d.uniforms.Time))
	if err := d.hud.Draw(strconv.Itoa(fps), timer, width, height); err != nil {
		return fmt.Errorf("failed to draw overlay: %w", err)
	}

	if d.recorder != nil {
		d.recorder.Capture(width, height)
	}
	d.host.EndFrame()
	return nil
}
