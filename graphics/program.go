package graphics

import "fmt"

// Program is a compiled and linked GPU program.
type Program interface {
	Delete()
}

// Compiler turns vertex and fragment source text into a Program. A failure
// is reported as a *CompileError.
type Compiler interface {
	CompileAndLink(vertexSource, fragmentSource string) (Program, error)
}

// CompileError carries the driver's diagnostic for a shader that failed to
// compile or a program that failed to link.
type CompileError struct {
	// Stage is "vertex", "fragment" or "link".
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}
