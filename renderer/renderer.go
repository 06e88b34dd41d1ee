package renderer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/shadersandbox/graphics"
)

// Package-level guard so gl.Init() runs once per process.
var glInitOnce sync.Once

// Renderer owns the GL function bindings for a context and compiles the
// programs drawn on it.
type Renderer struct {
	context graphics.Context
}

// Program is a linked GL program.
type Program struct {
	ID uint32
}

func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func NewRenderer(ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{context: ctx}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	return r, nil
}

// CompileAndLink implements graphics.Compiler.
func (r *Renderer) CompileAndLink(vertexSource, fragmentSource string) (graphics.Program, error) {
	id, err := NewProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id}, nil
}

// ReadPixels returns the bottom-up RGBA8 contents of the current draw
// framebuffer.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Version returns the GL version string of the current context.
func (r *Renderer) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// NewProgram compiles both stages and links them. Failures are returned as
// *graphics.CompileError with the driver's info log.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, &graphics.CompileError{Stage: "link", Log: strings.TrimRight(log, "\x00")}
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, &graphics.CompileError{Stage: stageName(shaderType), Log: strings.TrimRight(logText, "\x00")}
	}
	return shader, nil
}

func stageName(shaderType uint32) string {
	if shaderType == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}
