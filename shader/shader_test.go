package shader

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/shadersandbox/assets"
	"github.com/richinsley/shadersandbox/graphics"
)

const mainImageBody = `void mainImage(out vec4 fragColor, in vec2 fragCoord)
{
    vec2 uv = fragCoord / iResolution.xy;
    fragColor = vec4(uv, 0.5 + 0.5 * sin(iGlobalTime), 1.0);
}
`

var (
	reMain    = regexp.MustCompile(`\bvoid\s+main\s*\(`)
	reUniform = regexp.MustCompile(`(?m)^\s*uniform\s+(\w+)\s+(\w+)\s*;`)
)

type fakeProgram struct{ vertex, fragment string }

func (*fakeProgram) Delete() {}

type fakeCompiler struct {
	calls int
	err   error
}

func (c *fakeCompiler) CompileAndLink(vertex, fragment string) (graphics.Program, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &fakeProgram{vertex: vertex, fragment: fragment}, nil
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGetFragmentShader(t *testing.T) {
	src := GetFragmentShader(mainImageBody)

	assert.Len(t, reMain.FindAllString(src, -1), 1)
	assert.Contains(t, src, "mainImage(sandboxFragColor, gl_FragCoord.xy)")
	assert.Contains(t, src, mainImageBody)

	uniforms := map[string]string{}
	for _, m := range reUniform.FindAllStringSubmatch(src, -1) {
		uniforms[m[2]] = m[1]
	}
	assert.Equal(t, map[string]string{
		UniformTime:       "float",
		UniformResolution: "vec3",
		UniformMouse:      "vec4",
	}, uniforms)
}

func TestLoadShadertoy(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "simple.vs", "#version 410 core\nvoid main(){}\n")
	fs := writeFile(t, dir, "toy.frag", mainImageBody)

	src, err := Load(vs, fs, true)
	require.NoError(t, err)
	assert.True(t, src.Shadertoy)
	assert.Equal(t, GetFragmentShader(mainImageBody), src.Fragment)
	assert.Equal(t, "#version 410 core\nvoid main(){}\n", src.Vertex)
}

func TestLoadRawIsVerbatim(t *testing.T) {
	dir := t.TempDir()
	body := "#version 410 core\r\nuniform vec2 screenSize;\nout vec4 c;\nvoid main() { c = vec4(gl_FragCoord.xy / screenSize, 0, 1); }"
	vs := writeFile(t, dir, "simple.vs", "void main(){}")
	fs := writeFile(t, dir, "raw.frag", body)

	src, err := Load(vs, fs, false)
	require.NoError(t, err)
	assert.False(t, src.Shadertoy)
	assert.Equal(t, body, src.Fragment)
}

func TestBuildMissingFragmentDoesNotCompile(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "simple.vs", "void main(){}")
	c := &fakeCompiler{}

	prog, src, err := Build(c, vs, filepath.Join(dir, "missing.frag"), true)
	require.Error(t, err)
	assert.Nil(t, prog)
	assert.Nil(t, src)

	var ioErr *assets.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, filepath.Join(dir, "missing.frag"), ioErr.Path)
	assert.Zero(t, c.calls)
}

func TestBuildMissingVertex(t *testing.T) {
	dir := t.TempDir()
	fs := writeFile(t, dir, "toy.frag", mainImageBody)
	c := &fakeCompiler{}

	_, _, err := Build(c, filepath.Join(dir, "simple.vs"), fs, false)
	var ioErr *assets.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Zero(t, c.calls)
}

func TestBuildCompileError(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "simple.vs", "void main(){}")
	fs := writeFile(t, dir, "toy.frag", "void mainImage(")
	c := &fakeCompiler{err: &graphics.CompileError{Stage: "fragment", Log: "0:12: syntax error"}}

	_, _, err := Build(c, vs, fs, true)
	var compileErr *graphics.CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, "fragment", compileErr.Stage)
	assert.Contains(t, err.Error(), "0:12: syntax error")
	assert.Equal(t, 1, c.calls)
}

func TestBuildPassesSources(t *testing.T) {
	dir := t.TempDir()
	vs := writeFile(t, dir, "simple.vs", "VS")
	fs := writeFile(t, dir, "toy.frag", mainImageBody)
	c := &fakeCompiler{}

	prog, src, err := Build(c, vs, fs, true)
	require.NoError(t, err)
	fp := prog.(*fakeProgram)
	assert.Equal(t, "VS", fp.vertex)
	assert.Equal(t, src.Fragment, fp.fragment)
}
