package inputs

// Uniforms holds the values bound to the shader program for one draw call.
type Uniforms struct {
	// Time is the shader clock in seconds (iGlobalTime).
	Time float32
	// Resolution is the framebuffer size in pixels; z is always 0.
	Resolution [3]float32
	// Mouse is the cursor position sampled while the left button is held; zw
	// are always 0.
	Mouse [4]float32
}

// ScreenSize returns the xy part of Resolution, the only value raw shaders get.
func (u *Uniforms) ScreenSize() [2]float32 {
	return [2]float32{u.Resolution[0], u.Resolution[1]}
}
