package options

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/richinsley/shadersandbox/assets"
)

type ShaderOptions struct {
	ShaderFile   string // positional: the fragment shader to run
	Shadertoy    *bool
	Width        *int
	Height       *int
	Samples      *int // multisample count for the window
	VertexShader *string
	FontPath     *string // empty selects the built-in monospace face
	FontSize     *float64
	// Recording options
	RecordFile *string
	RecordFPS  *int
	FFMPEGPath *string
}

// ErrNoShader is returned when the positional shader_file is missing.
var ErrNoShader = errors.New("missing required argument: shader_file")

// NewFlagSet registers every sandbox flag on a new flag set and returns the
// options they fill in.
func NewFlagSet(name string, output io.Writer) (*pflag.FlagSet, *ShaderOptions) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false

	o := &ShaderOptions{
		Shadertoy:    fs.BoolP("shadertoy", "s", false, "Treat provided shader as Shadertoy would."),
		Width:        fs.Int("width", 640, "Initial window width"),
		Height:       fs.Int("height", 480, "Initial window height"),
		Samples:      fs.Int("samples", 4, "Multisample anti-aliasing samples"),
		VertexShader: fs.String("vertex", assets.DefaultVertexShader, "Vertex shader for the full-screen quad"),
		FontPath:     fs.String("font", "", "TrueType font for the overlay (built-in monospace if empty)"),
		FontSize:     fs.Float64("font-size", 32, "Overlay font size in points"),
		RecordFile:   fs.String("record", "", "Record the window to this video file"),
		RecordFPS:    fs.Int("record-fps", 60, "Frame rate written to the recording"),
		FFMPEGPath:   fs.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags] <shader_file>\n\n", name)
		fs.PrintDefaults()
	}
	return fs, o
}

// Parse parses args (without the program name). It returns pflag.ErrHelp
// when help was requested.
func Parse(name string, args []string, output io.Writer) (*ShaderOptions, error) {
	fs, o := NewFlagSet(name, output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := o.validate(fs.Args()); err != nil {
		fs.Usage()
		return nil, err
	}
	return o, nil
}

func (o *ShaderOptions) validate(positional []string) error {
	switch {
	case len(positional) == 0:
		return ErrNoShader
	case len(positional) > 1:
		return fmt.Errorf("unexpected arguments: %v", positional[1:])
	}
	o.ShaderFile = positional[0]

	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if *o.Samples < 0 {
		return fmt.Errorf("invalid sample count %d", *o.Samples)
	}
	if *o.FontSize <= 0 {
		return fmt.Errorf("invalid font size %g", *o.FontSize)
	}
	if *o.RecordFile != "" && *o.RecordFPS <= 0 {
		return fmt.Errorf("invalid record frame rate %d", *o.RecordFPS)
	}
	return nil
}

// Recording reports whether frames should be written to a video file.
func (o *ShaderOptions) Recording() bool {
	return *o.RecordFile != ""
}
