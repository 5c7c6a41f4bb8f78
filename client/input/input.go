package input

import (
	"github.com/cbodonnell/blaster/pkg/game/types"
	"github.com/cbodonnell/blaster/pkg/log"
	"github.com/cbodonnell/blaster/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps the keys the loop reacts to on press.
var keyBindings = map[ebiten.Key]types.Key{
	ebiten.KeyQ:      types.KeyQ,
	ebiten.KeyZ:      types.KeyZ,
	ebiten.KeyEscape: types.KeyEscape,
}

func IsRightPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
}

func IsLeftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
}

func IsUpPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)
}

func IsDownPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS)
}

// AppendDirections appends the movement directions held this tick to dirs.
// Opposite keys are both reported and cancel out in the player's velocity.
func AppendDirections(dirs []types.Direction) []types.Direction {
	if IsUpPressed() {
		dirs = append(dirs, types.DirectionUp)
	}
	if IsDownPressed() {
		dirs = append(dirs, types.DirectionDown)
	}
	if IsLeftPressed() {
		dirs = append(dirs, types.DirectionLeft)
	}
	if IsRightPressed() {
		dirs = append(dirs, types.DirectionRight)
	}
	return dirs
}

// heldKeys are reported on every tick they are down.
var heldKeys = map[ebiten.Key]types.Key{
	ebiten.KeyX: types.KeyX,
}

// Poller translates window input into loop events.
type Poller struct {
	events queue.Queue[types.InputEvent]
	keys   []ebiten.Key
}

func NewPoller(events queue.Queue[types.InputEvent]) *Poller {
	return &Poller{
		events: events,
		keys:   make([]ebiten.Key, 0, 8),
	}
}

// Poll enqueues the events that happened since the previous tick.
func (p *Poller) Poll() {
	if ebiten.IsWindowBeingClosed() {
		p.enqueue(types.NewCloseEvent())
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		key, ok := keyBindings[k]
		if !ok {
			continue
		}
		p.enqueue(types.NewKeyPressEvent(key))
	}

	for k, key := range heldKeys {
		if ebiten.IsKeyPressed(k) {
			p.enqueue(types.NewKeyHeldEvent(key))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.enqueue(types.NewMousePressEvent(float64(x), float64(y)))
	}
}

func (p *Poller) enqueue(event types.InputEvent) {
	if err := p.events.Enqueue(event); err != nil {
		log.Warn("Dropped %s event: %v", event.Type, err)
	}
}
