package inputs

// Key identifies the keyboard keys the sandbox reacts to. Every other key is
// reported as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

type MouseButton int

const (
	MouseUnknown MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}
