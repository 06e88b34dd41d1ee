package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/shadersandbox/graphics"
	"github.com/richinsley/shadersandbox/inputs"
	"github.com/richinsley/shadersandbox/shader"
)

// Four corners of the viewport, drawn as a triangle fan.
var quadVertices = []float32{
	-1.0, -1.0,
	1.0, -1.0,
	1.0, 1.0,
	-1.0, 1.0,
}

// Scene is the user's program and the full-screen quad it is drawn on.
type Scene struct {
	program   *Program
	shadertoy bool
	quadVAO   uint32
	quadVBO   uint32

	timeLoc       int32
	resolutionLoc int32
	mouseLoc      int32
	screenSizeLoc int32
}

// LoadScene builds the quad for prog and resolves the uniforms of the
// selected mode. Uniforms the program does not use are skipped when drawing.
func (r *Renderer) LoadScene(prog graphics.Program, shadertoy bool) (*Scene, error) {
	p, ok := prog.(*Program)
	if !ok {
		return nil, fmt.Errorf("program %T was not built by this renderer", prog)
	}

	s := &Scene{
		program:       p,
		shadertoy:     shadertoy,
		timeLoc:       -1,
		resolutionLoc: -1,
		mouseLoc:      -1,
		screenSizeLoc: -1,
	}

	gl.GenVertexArrays(1, &s.quadVAO)
	gl.GenBuffers(1, &s.quadVBO)
	gl.BindVertexArray(s.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if shadertoy {
		s.timeLoc = uniformLocation(p.ID, shader.UniformTime)
		s.resolutionLoc = uniformLocation(p.ID, shader.UniformResolution)
		s.mouseLoc = uniformLocation(p.ID, shader.UniformMouse)
	} else {
		s.screenSizeLoc = uniformLocation(p.ID, shader.UniformScreenSize)
	}

	if err := checkError("load scene"); err != nil {
		s.Destroy()
		return nil, err
	}
	return s, nil
}

// RenderFrame clears the default framebuffer and draws the quad once with u
// bound. A GL error raised by the draw is returned.
func (s *Scene) RenderFrame(u *inputs.Uniforms) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(u.Resolution[0]), int32(u.Resolution[1]))
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.ClearDepth(1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(s.program.ID)
	s.updateUniforms(u)
	gl.BindVertexArray(s.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)

	return checkError("draw")
}

func (s *Scene) updateUniforms(u *inputs.Uniforms) {
	if s.timeLoc != -1 {
		gl.Uniform1f(s.timeLoc, u.Time)
	}
	if s.resolutionLoc != -1 {
		gl.Uniform3f(s.resolutionLoc, u.Resolution[0], u.Resolution[1], u.Resolution[2])
	}
	if s.mouseLoc != -1 {
		gl.Uniform4f(s.mouseLoc, u.Mouse[0], u.Mouse[1], u.Mouse[2], u.Mouse[3])
	}
	if s.screenSizeLoc != -1 {
		size := u.ScreenSize()
		gl.Uniform2f(s.screenSizeLoc, size[0], size[1])
	}
}

// Destroy releases the quad and the program.
func (s *Scene) Destroy() {
	if s == nil {
		return
	}
	gl.DeleteBuffers(1, &s.quadVBO)
	gl.DeleteVertexArrays(1, &s.quadVAO)
	s.program.Delete()
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: gl error 0x%04x", op, code)
	}
	return nil
}
