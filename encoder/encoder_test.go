package encoder

import (
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/shadersandbox/options"
)

func TestGetArgs(t *testing.T) {
	in, out := getArgs(640, 480, 30)

	assert.Equal(t, "rawvideo", in["f"])
	assert.Equal(t, "rgba", in["pix_fmt"])
	assert.Equal(t, "640x480", in["s"])
	assert.Equal(t, 30, in["framerate"])

	assert.Equal(t, "vflip", out["vf"])
	assert.Equal(t, "yuv420p", out["pix_fmt"])
	if runtime.GOOS == "darwin" {
		assert.Equal(t, "h264_videotoolbox", out["c:v"])
	} else {
		assert.Equal(t, "libx264", out["c:v"])
	}
}

func TestAccepts(t *testing.T) {
	e := &FFmpegEncoder{width: 320, height: 200}
	assert.True(t, e.Accepts(320, 200))
	assert.False(t, e.Accepts(640, 480))
}

func TestSendVideoDropsWrongSize(t *testing.T) {
	e := &FFmpegEncoder{width: 2, height: 2, frames: make(chan *Frame, 1)}

	e.SendVideo(&Frame{Pixels: make([]byte, 3), PTS: 0})
	assert.Len(t, e.frames, 0)

	e.SendVideo(&Frame{Pixels: make([]byte, 16), PTS: 1})
	assert.Len(t, e.frames, 1)

	// queue full
	e.SendVideo(&Frame{Pixels: make([]byte, 16), PTS: 2})
	assert.Len(t, e.frames, 1)
}

func TestNewFFmpegEncoderRequiresRecordFile(t *testing.T) {
	opts, err := options.Parse("sandbox", []string{"shader.glsl"}, io.Discard)
	require.NoError(t, err)

	_, err = NewFFmpegEncoder(opts, 640, 480)
	assert.Error(t, err)
}
