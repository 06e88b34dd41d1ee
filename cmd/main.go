package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/richinsley/shadersandbox/assets"
	"github.com/richinsley/shadersandbox/encoder"
	"github.com/richinsley/shadersandbox/glfwcontext"
	"github.com/richinsley/shadersandbox/graphics"
	"github.com/richinsley/shadersandbox/options"
	"github.com/richinsley/shadersandbox/overlay"
	"github.com/richinsley/shadersandbox/renderer"
	"github.com/richinsley/shadersandbox/sandbox"
	"github.com/richinsley/shadersandbox/shader"
	"github.com/richinsley/shadersandbox/state"
)

// frameRecorder copies each finished frame out of the back buffer and hands
// it to the encoder.
type frameRecorder struct {
	renderer *renderer.Renderer
	encoder  *encoder.FFmpegEncoder
	pts      int64
	warned   bool
}

func (f *frameRecorder) Capture(width, height int) {
	if !f.encoder.Accepts(width, height) {
		if !f.warned {
			log.Printf("Window resized to %dx%d, recording paused until it matches the original size", width, height)
			f.warned = true
		}
		return
	}
	f.warned = false
	f.encoder.SendVideo(&encoder.Frame{
		Pixels: f.renderer.ReadPixels(width, height),
		PTS:    f.pts,
	})
	f.pts++
}

// describe prefixes err with the stage of startup that failed.
func describe(err error) error {
	var ioErr *assets.IOError
	var compileErr *graphics.CompileError
	switch {
	case errors.As(err, &ioErr):
		return fmt.Errorf("failed to read shader source: %w", err)
	case errors.As(err, &compileErr):
		return fmt.Errorf("failed to compile shader program: %w", err)
	}
	return err
}

func run(opts *options.ShaderOptions) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts, true)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(ctx)
	if err != nil {
		return err
	}
	log.Printf("OpenGL version: %s", r.Version())

	prog, _, err := shader.Build(r, *opts.VertexShader, opts.ShaderFile, *opts.Shadertoy)
	if err != nil {
		return describe(err)
	}
	defer prog.Delete()

	scene, err := r.LoadScene(prog, *opts.Shadertoy)
	if err != nil {
		return err
	}
	defer scene.Destroy()

	face, err := overlay.LoadFace(*opts.FontPath, *opts.FontSize)
	if err != nil {
		return fmt.Errorf("failed to load overlay font: %w", err)
	}
	hud, err := overlay.New(face)
	if err != nil {
		face.Close()
		return err
	}
	defer hud.Destroy()

	driver := sandbox.NewDriver(ctx, scene, hud, state.New())

	if opts.Recording() {
		width, height := ctx.GetFramebufferSize()
		enc, err := encoder.NewFFmpegEncoder(opts, width, height)
		if err != nil {
			return fmt.Errorf("failed to start recording: %w", err)
		}
		defer func() {
			if err := enc.Close(); err != nil {
				log.Printf("Recording failed: %v", err)
				return
			}
			log.Printf("Successfully recorded to %s", *opts.RecordFile)
		}()
		driver.SetRecorder(&frameRecorder{renderer: r, encoder: enc})
	}

	log.Println("Starting interactive render loop...")
	return driver.Run()
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := options.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		log.Fatalf("%v", err)
	}
}
