package types

type InputEventType uint8

const (
	InputEventClose InputEventType = iota
	InputEventKeyPress
	// InputEventKeyHeld is reported every frame a watched key is down.
	InputEventKeyHeld
	InputEventMousePress
	InputEventResize
)

func (t InputEventType) String() string {
	switch t {
	case InputEventClose:
		return "Close"
	case InputEventKeyPress:
		return "KeyPress"
	case InputEventKeyHeld:
		return "KeyHeld"
	case InputEventMousePress:
		return "MousePress"
	case InputEventResize:
		return "Resize"
	}
	return "Unknown"
}

// Key identifies the keys the frame loop reacts to as discrete presses.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyQ
	KeyZ
	KeyEscape
	KeyX
)

func (k Key) String() string {
	switch k {
	case KeyQ:
		return "Q"
	case KeyZ:
		return "Z"
	case KeyEscape:
		return "Escape"
	case KeyX:
		return "X"
	}
	return "Unknown"
}

// InputEvent is a discrete window event queued by the client and drained
// once per frame.
type InputEvent struct {
	Type InputEventType
	// Key is set for InputEventKeyPress and InputEventKeyHeld.
	Key Key
	// X and Y are the cursor position for InputEventMousePress.
	X float64
	Y float64
	// Width and Height are the new viewport size for InputEventResize.
	Width  int
	Height int
}

func NewCloseEvent() InputEvent {
	return InputEvent{Type: InputEventClose}
}

func NewKeyPressEvent(key Key) InputEvent {
	return InputEvent{Type: InputEventKeyPress, Key: key}
}

func NewKeyHeldEvent(key Key) InputEvent {
	return InputEvent{Type: InputEventKeyHeld, Key: key}
}

func NewMousePressEvent(x, y float64) InputEvent {
	return InputEvent{Type: InputEventMousePress, X: x, Y: y}
}

func NewResizeEvent(width, height int) InputEvent {
	return InputEvent{Type: InputEventResize, Width: width, Height: height}
}
