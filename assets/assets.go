// Package assets reads the files the sandbox needs at startup: shader
// sources and fonts.
package assets

import (
	"fmt"
	"os"
)

// DefaultVertexShader is the vertex stage used for the full-screen quad,
// resolved relative to the working directory.
const DefaultVertexShader = "assets/simple.vs"

// IOError reports a startup file that is missing or unreadable.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ReadFile returns the contents of path or an *IOError.
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return b, nil
}

// ReadText is ReadFile for text sources.
func ReadText(path string) (string, error) {
	b, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
