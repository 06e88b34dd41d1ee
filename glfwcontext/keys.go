package glfwcontext

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/shadersandbox/inputs"
)

func translateKey(key glfw.Key) inputs.Key {
	switch key {
	case glfw.KeySpace:
		return inputs.KeySpace
	case glfw.KeyEscape:
		return inputs.KeyEscape
	default:
		return inputs.KeyUnknown
	}
}

func translateButton(button glfw.MouseButton) inputs.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return inputs.MouseLeft
	case glfw.MouseButtonRight:
		return inputs.MouseRight
	case glfw.MouseButtonMiddle:
		return inputs.MouseMiddle
	default:
		return inputs.MouseUnknown
	}
}
