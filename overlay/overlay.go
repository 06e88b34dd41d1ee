// Package overlay draws the heads-up text (frame rate and shader clock) over
// the shader pass.
package overlay

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"

	"github.com/richinsley/shadersandbox/renderer"
)

const textVertexShaderSource = `#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
out vec2 texCoord;
uniform mat4 projection;
void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    texCoord = aTexCoord;
}
`

const textFragmentShaderSource = `#version 410 core
in vec2 texCoord;
out vec4 fragColor;
uniform sampler2D textTexture;
uniform vec3 textColor;
void main() {
    fragColor = vec4(textColor, texture(textTexture, texCoord).r);
}
`

// labelTexture caches the rasterized text of one label.
type labelTexture struct {
	text    string
	texture uint32
	width   int
	height  int
}

// Overlay draws labels with one alpha texture per label slot. A slot is
// rasterized again only when its text changes.
type Overlay struct {
	face          font.Face
	program       uint32
	vao           uint32
	vbo           uint32
	projectionLoc int32
	colorLoc      int32
	textureLoc    int32
	slots         []*labelTexture
}

func New(face font.Face) (*Overlay, error) {
	program, err := renderer.NewProgram(textVertexShaderSource, textFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("overlay program: %w", err)
	}

	o := &Overlay{
		face:          face,
		program:       program,
		projectionLoc: gl.GetUniformLocation(program, gl.Str("projection\x00")),
		colorLoc:      gl.GetUniformLocation(program, gl.Str("textColor\x00")),
		textureLoc:    gl.GetUniformLocation(program, gl.Str("textTexture\x00")),
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	// 4 vertices of x, y, u, v
	gl.BufferData(gl.ARRAY_BUFFER, 4*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return o, nil
}

// Draw implements sandbox.HUD: the frame rate goes in the top-right corner
// and the shader clock in the top-left.
func (o *Overlay) Draw(fpsText, timerText string, width, height int) error {
	return o.DrawLabels([]Label{
		{Text: fpsText, Anchor: TopRight},
		{Text: timerText, Anchor: TopLeft},
	}, width, height)
}

// DrawLabels draws labels over whatever is in the framebuffer.
func (o *Overlay) DrawLabels(labels []Label, width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	for len(o.slots) < len(labels) {
		o.slots = append(o.slots, &labelTexture{})
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	projection := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.UseProgram(o.program)
	gl.UniformMatrix4fv(o.projectionLoc, 1, false, &projection[0])
	gl.Uniform3f(o.colorLoc, 1.0, 1.0, 1.0)
	gl.Uniform1i(o.textureLoc, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)

	for i, l := range labels {
		slot := o.slots[i]
		o.upload(slot, l.Text)

		x, y := Place(l.Anchor, slot.width, slot.height, width, height)
		x0, y0 := float32(x), float32(y)
		x1, y1 := x0+float32(slot.width), y0+float32(slot.height)
		vertices := []float32{
			x0, y0, 0, 0,
			x1, y0, 1, 0,
			x1, y1, 1, 1,
			x0, y1, 0, 1,
		}
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
		gl.BindTexture(gl.TEXTURE_2D, slot.texture)
		gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("overlay: gl error 0x%04x", code)
	}
	return nil
}

func (o *Overlay) upload(slot *labelTexture, text string) {
	if slot.texture != 0 && slot.text == text {
		return
	}
	if slot.texture == 0 {
		gl.GenTextures(1, &slot.texture)
		gl.BindTexture(gl.TEXTURE_2D, slot.texture)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	}

	img := Rasterize(o.face, text)
	slot.text = text
	slot.width = img.Bounds().Dx()
	slot.height = img.Bounds().Dy()

	gl.BindTexture(gl.TEXTURE_2D, slot.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(slot.width), int32(slot.height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// Destroy releases the GL objects and closes the font face.
func (o *Overlay) Destroy() {
	for _, slot := range o.slots {
		if slot.texture != 0 {
			gl.DeleteTextures(1, &slot.texture)
		}
	}
	o.slots = nil
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteProgram(o.program)
	o.face.Close()
}
