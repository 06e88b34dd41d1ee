package shader

import (
	"github.com/richinsley/shadersandbox/assets"
	"github.com/richinsley/shadersandbox/graphics"
)

// Source is the vertex and fragment text ready to hand to a compiler.
type Source struct {
	Vertex    string
	Fragment  string
	Shadertoy bool
}

// Load reads both shader files. In Shadertoy mode the fragment file is wrapped
// with GetFragmentShader; otherwise it is used byte for byte. Unreadable files
// are reported as *assets.IOError.
func Load(vertexPath, fragmentPath string, shadertoy bool) (*Source, error) {
	vertex, err := assets.ReadText(vertexPath)
	if err != nil {
		return nil, err
	}
	fragment, err := assets.ReadText(fragmentPath)
	if err != nil {
		return nil, err
	}
	if shadertoy {
		fragment = GetFragmentShader(fragment)
	}
	return &Source{
		Vertex:    vertex,
		Fragment:  fragment,
		Shadertoy: shadertoy,
	}, nil
}

// Compile links s with c.
func (s *Source) Compile(c graphics.Compiler) (graphics.Program, error) {
	return c.CompileAndLink(s.Vertex, s.Fragment)
}

// Build loads and compiles a program. Nothing is compiled if either file
// cannot be read.
func Build(c graphics.Compiler, vertexPath, fragmentPath string, shadertoy bool) (graphics.Program, *Source, error) {
	src, err := Load(vertexPath, fragmentPath, shadertoy)
	if err != nil {
		return nil, nil, err
	}
	prog, err := src.Compile(c)
	if err != nil {
		return nil, nil, err
	}
	return prog, src, nil
}
