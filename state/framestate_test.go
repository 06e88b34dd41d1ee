package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/richinsley/shadersandbox/inputs"
)

func TestNewFrameState(t *testing.T) {
	s := New()
	assert.True(t, s.Playing)
	assert.False(t, s.MouseButtonDown)
	assert.Zero(t, s.ElapsedTime)
	assert.Zero(t, s.FPS)
}

func TestPlayPauseTime(t *testing.T) {
	s := New()
	deltas := []float64{0.25, 0.5, 0.125, 0}
	for _, d := range deltas {
		s.OnUpdateTick(d)
	}
	assert.Equal(t, 0.875, s.ElapsedTime)

	s.OnKeyPress(inputs.KeySpace)
	assert.False(t, s.Playing)
	for i := 0; i < 10; i++ {
		s.OnUpdateTick(1)
	}
	assert.Equal(t, 0.875, s.ElapsedTime)

	s.OnKeyPress(inputs.KeySpace)
	assert.True(t, s.Playing)
	s.OnUpdateTick(0.125)
	assert.Equal(t, 1.0, s.ElapsedTime)
}

func TestOtherKeysIgnored(t *testing.T) {
	s := New()
	s.OnKeyPress(inputs.KeyEscape)
	s.OnKeyPress(inputs.KeyUnknown)
	assert.True(t, s.Playing)
}

func TestMouseButtonTracking(t *testing.T) {
	s := New()

	s.OnMousePress(inputs.MouseRight)
	assert.False(t, s.MouseButtonDown)

	s.OnMousePress(inputs.MouseLeft)
	assert.True(t, s.MouseButtonDown)

	s.OnCursorMove(3, 4)
	s.OnMouseRelease(inputs.MouseMiddle)
	assert.True(t, s.MouseButtonDown)
	assert.Equal(t, [2]float64{3, 4}, s.MousePosition)

	s.OnMouseRelease(inputs.MouseLeft)
	assert.False(t, s.MouseButtonDown)

	s.OnCursorMove(7, 8)
	assert.Equal(t, [2]float64{7, 8}, s.MousePosition)

	s.OnMousePress(inputs.MouseLeft)
	s.OnMousePress(inputs.MouseLeft)
	s.OnMouseRelease(inputs.MouseLeft)
	assert.False(t, s.MouseButtonDown)
}

func TestSyncStickyMouse(t *testing.T) {
	s := New()
	var u inputs.Uniforms

	s.OnCursorMove(10, 20)
	s.OnMousePress(inputs.MouseLeft)
	s.Sync(&u, 640, 480)
	assert.Equal(t, [4]float32{10, 20, 0, 0}, u.Mouse)

	s.OnMouseRelease(inputs.MouseLeft)
	s.OnCursorMove(50, 60)
	s.Sync(&u, 640, 480)
	assert.Equal(t, [4]float32{10, 20, 0, 0}, u.Mouse)
}

func TestSyncResolutionAndTime(t *testing.T) {
	s := New()
	s.OnUpdateTick(1.5)
	var u inputs.Uniforms

	s.Sync(&u, 800, 600)
	assert.Equal(t, [3]float32{800, 600, 0}, u.Resolution)
	assert.Equal(t, float32(1.5), u.Time)
	assert.Equal(t, [2]float32{800, 600}, u.ScreenSize())

	s.Sync(&u, 1024, 768)
	assert.Equal(t, [3]float32{1024, 768, 0}, u.Resolution)
}

func TestTickFPSUpdatesField(t *testing.T) {
	s := New()
	s.TickFPS(0)
	assert.Equal(t, 2, s.TickFPS(500*time.Millisecond))
	assert.Equal(t, 2, s.FPS)
}
