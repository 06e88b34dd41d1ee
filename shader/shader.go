package shader

// ─────────────────────────────── Shadertoy glue ────────────────────────────────

// The wrapper targets a 4.1 core context, which has no gl_FragColor, so the
// color slot handed to mainImage is an explicit output.
const shadertoyPreamble = `#version 410 core

uniform float iGlobalTime;
uniform vec3  iResolution;
uniform vec4  iMouse;

#define iTime iGlobalTime

out vec4 sandboxFragColor;

`

const shadertoyMain = `

void main(void)
{
    mainImage(sandboxFragColor, gl_FragCoord.xy);
}
`

// Uniform names bound in Shadertoy mode.
const (
	UniformTime       = "iGlobalTime"
	UniformResolution = "iResolution"
	UniformMouse      = "iMouse"
)

// UniformScreenSize is the only uniform bound for raw shaders.
const UniformScreenSize = "screenSize"

// GeneratePreamble returns the declarations placed before a Shadertoy body.
func GeneratePreamble() string {
	return shadertoyPreamble
}

// GetMain returns the entry point placed after a Shadertoy body.
func GetMain() string {
	return shadertoyMain
}

// GetFragmentShader wraps a Shadertoy body that defines mainImage into a
// complete fragment shader. The body is not inspected.
func GetFragmentShader(user string) string {
	return GeneratePreamble() + user + GetMain()
}
