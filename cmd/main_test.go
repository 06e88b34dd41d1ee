package main

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richinsley/shadersandbox/assets"
	"github.com/richinsley/shadersandbox/graphics"
)

func TestDescribe(t *testing.T) {
	ioErr := &assets.IOError{Path: "missing.glsl", Err: os.ErrNotExist}
	err := describe(ioErr)
	assert.Contains(t, err.Error(), "failed to read shader source")
	assert.ErrorIs(t, err, os.ErrNotExist)

	compileErr := &graphics.CompileError{Stage: "fragment", Log: "0:1: syntax error"}
	err = describe(compileErr)
	assert.Contains(t, err.Error(), "failed to compile shader program")
	assert.Contains(t, err.Error(), "failed to compile fragment shader")

	other := errors.New("boom")
	assert.Equal(t, other, describe(other))
}
