package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/shadersandbox/inputs"
	options "github.com/richinsley/shadersandbox/options"
)

const windowTitle = "Shader Sandbox"

// Context is a GLFW window that queues its input callbacks as inputs events.
type Context struct {
	window   *glfw.Window
	events   []inputs.Event
	lastTime float64
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
}

// New creates and initializes a new GLFW window and returns a Context object.
func New(options *options.ShaderOptions, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, *options.Samples)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, windowTitle, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
	}
	c.RegisterKeyCallback(glfw.KeyEscape, func() { win.SetShouldClose(true) })

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)

	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	c.lastTime = glfw.GetTime()

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed, before the press is queued.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if callback, ok := c.keyCallbacks[key]; ok {
		callback()
	}
	c.events = append(c.events, inputs.KeyPress{Key: translateKey(key)})
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := translateButton(button)
	switch action {
	case glfw.Press:
		c.events = append(c.events, inputs.MousePress{Button: b})
	case glfw.Release:
		c.events = append(c.events, inputs.MouseRelease{Button: b})
	}
}

// glfwCursorPosCallback queues the cursor in framebuffer pixels, origin at
// the top-left of the window.
func (c *Context) glfwCursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	scaleX, scaleY := c.contentScale()
	c.events = append(c.events, inputs.CursorMove{X: xpos * scaleX, Y: ypos * scaleY})
}

// contentScale is the ratio of framebuffer pixels to window coordinates.
func (c *Context) contentScale() (float64, float64) {
	if c.window == nil {
		return 1.0, 1.0
	}
	fbWidth, fbHeight := c.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	if winWidth <= 0 || winHeight <= 0 {
		return 1.0, 1.0
	}
	return float64(fbWidth) / float64(winWidth), float64(fbHeight) / float64(winHeight)
}

// PollEvents implements graphics.Context. The update tick carries the time
// since the previous poll; no render tick is produced while the window is
// minimized.
func (c *Context) PollEvents() []inputs.Event {
	glfw.PollEvents()

	now := glfw.GetTime()
	dt := now - c.lastTime
	if dt < 0 {
		dt = 0
	}
	c.lastTime = now
	c.events = append(c.events, inputs.UpdateTick{DT: dt})

	if w, h := c.GetFramebufferSize(); w > 0 && h > 0 {
		c.events = append(c.events, inputs.RenderTick{})
	}

	events := c.events
	c.events = nil
	return events
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
