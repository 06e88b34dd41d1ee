// Package encoder records rendered frames to a video file by piping raw
// RGBA pixels into an ffmpeg child process.
package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/richinsley/shadersandbox/options"
)

// queueDepth bounds how many frames may wait for ffmpeg before new ones are
// dropped.
const queueDepth = 8

// Frame represents a single rendered video frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// FFmpegEncoder feeds frames of a fixed size to ffmpeg.
type FFmpegEncoder struct {
	width  int
	height int
	fps    int

	frames chan *Frame
	done   chan error
	closed bool
}

// NewFFmpegEncoder starts ffmpeg writing to the record file in opts. The
// frame size is fixed for the lifetime of the encoder.
func NewFFmpegEncoder(opts *options.ShaderOptions, width, height int) (*FFmpegEncoder, error) {
	if !opts.Recording() {
		return nil, errors.New("no record file configured")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	e := &FFmpegEncoder{
		width:  width,
		height: height,
		fps:    *opts.RecordFPS,
		frames: make(chan *Frame, queueDepth),
		done:   make(chan error, 1),
	}

	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := getArgs(width, height, e.fps)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*opts.RecordFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if *opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*opts.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// unblock the writer if ffmpeg exits early
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	go e.run(pipeWriter, errc)

	log.Printf("Recording %dx%d at %d fps to %s", width, height, e.fps, *opts.RecordFile)
	return e, nil
}

func getArgs(width, height, fps int) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": fps,
	}

	// glReadPixels returns rows bottom-up
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}

	switch runtime.GOOS {
	case "darwin":
		outputArgs["c:v"] = "h264_videotoolbox"
		outputArgs["b:v"] = "25M"
	default:
		outputArgs["c:v"] = "libx264"
		outputArgs["preset"] = "fast"
	}
	return
}

// Accepts reports whether a frame of the given size can be encoded.
func (e *FFmpegEncoder) Accepts(width, height int) bool {
	return width == e.width && height == e.height
}

// SendVideo queues a frame without blocking the render loop. Frames of the
// wrong size, and frames arriving while the queue is full, are dropped.
func (e *FFmpegEncoder) SendVideo(frame *Frame) {
	if e.closed {
		return
	}
	if len(frame.Pixels) != e.width*e.height*4 {
		log.Printf("Dropping frame %d: got %d bytes, want %d", frame.PTS, len(frame.Pixels), e.width*e.height*4)
		return
	}
	select {
	case e.frames <- frame:
	default:
		log.Printf("Encoder queue full, dropping frame %d", frame.PTS)
	}
}

// run is the consumer side. It writes queued frames to ffmpeg's stdin until
// the queue is closed.
func (e *FFmpegEncoder) run(w *io.PipeWriter, errc <-chan error) {
	var writeErr error
	for frame := range e.frames {
		if writeErr != nil {
			continue
		}
		if _, err := w.Write(frame.Pixels); err != nil {
			writeErr = fmt.Errorf("write frame %d to ffmpeg: %w", frame.PTS, err)
			log.Printf("Error: %v", writeErr)
		}
	}
	w.Close()

	if err := <-errc; err != nil {
		e.done <- fmt.Errorf("ffmpeg: %w", err)
		return
	}
	e.done <- writeErr
}

// Close flushes the queue and waits for ffmpeg to finish the file.
func (e *FFmpegEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	close(e.frames)
	return <-e.done
}
