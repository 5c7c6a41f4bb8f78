package game

import (
	"github.com/cbodonnell/blaster/pkg/collisions"
	"github.com/cbodonnell/blaster/pkg/game/constants"
	"github.com/cbodonnell/blaster/pkg/game/types"
	"github.com/cbodonnell/blaster/pkg/kinematic"
	"github.com/cbodonnell/blaster/pkg/log"
	"github.com/cbodonnell/blaster/pkg/queue"
)

type LoopState int

const (
	LoopStateRunning LoopState = iota
	LoopStateStopped
)

func (s LoopState) String() string {
	switch s {
	case LoopStateRunning:
		return "Running"
	case LoopStateStopped:
		return "Stopped"
	}
	return "Unknown"
}

// Loop runs one frame of the game per Step: drain events, apply commands,
// update, spawn, sweep. Render draws the resulting frame.
type Loop struct {
	manager  *Manager
	commands *Commands
	events   queue.Queue[types.InputEvent]
	viewport Viewport
	state    LoopState
	playerID ObjectID
	frame    uint64
	// shots holds the click targets drained from the current frame's events.
	shots []kinematic.Vector
}

// NewLoopOptions contains options for creating a new Loop.
type NewLoopOptions struct {
	// Viewport is the initial visible area.
	Viewport Viewport
	// Events is the queue of window events drained once per frame.
	Events queue.Queue[types.InputEvent]
	// Manager owns the game objects. A new manager is created when nil.
	Manager *Manager
	// SkipSpawn disables spawning the player and the first enemy.
	SkipSpawn bool
}

func NewLoop(opts NewLoopOptions) *Loop {
	viewport := opts.Viewport
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = NewViewport(constants.ViewportWidth, constants.ViewportHeight)
	}
	events := opts.Events
	if events == nil {
		events = queue.NewInMemoryQueue[types.InputEvent](queue.QueueBufferSize)
	}
	manager := opts.Manager
	if manager == nil {
		manager = NewManager(collisions.NewCollisionSpace(int(viewport.Width), int(viewport.Height)))
	}

	l := &Loop{
		manager:  manager,
		commands: NewCommands(),
		events:   events,
		viewport: viewport,
		state:    LoopStateRunning,
	}

	if !opts.SkipSpawn {
		center := viewport.Center()
		l.playerID = manager.Add(NewPlayer(NewObjectOptions{X: center.X, Y: center.Y}))
		manager.Add(NewEnemy(NewObjectOptions{X: constants.EnemyStartingX, Y: constants.EnemyStartingY}))
		log.Debug("Spawned player %d at (%0.1f, %0.1f)", l.playerID, center.X, center.Y)
	}

	return l
}

func (l *Loop) State() LoopState {
	return l.state
}

func (l *Loop) Manager() *Manager {
	return l.manager
}

func (l *Loop) Viewport() Viewport {
	return l.viewport
}

func (l *Loop) Events() queue.Queue[types.InputEvent] {
	return l.events
}

// Frame returns the number of completed steps.
func (l *Loop) Frame() uint64 {
	return l.frame
}

// Player returns the player object, if it is still alive.
func (l *Loop) Player() (*GameObject, bool) {
	if l.playerID == 0 {
		return nil, false
	}
	return l.manager.Get(l.playerID)
}

// SetPlayer makes the object with id receive movement and shoot commands.
func (l *Loop) SetPlayer(id ObjectID) {
	l.playerID = id
}

// Stop moves the loop to its terminal state.
func (l *Loop) Stop() {
	if l.state == LoopStateStopped {
		return
	}
	l.state = LoopStateStopped
	log.Info("Game loop stopped after %d frames", l.frame)
}

// Step advances the game by dt seconds. directions are the movement keys held
// this frame. Once stopped, Step does nothing.
func (l *Loop) Step(dt float64, directions []types.Direction) {
	if l.state == LoopStateStopped {
		return
	}

	l.processInputEvents()
	if l.state == LoopStateStopped {
		return
	}

	l.applyPlayerCommands(directions)

	frame := &Frame{
		DeltaTime: dt,
		Viewport:  l.viewport,
		Commands:  l.commands,
	}
	l.manager.ForEach(func(obj *GameObject) {
		obj.Update(frame)
	})

	l.commands.Flush(l.manager)
	l.manager.RemoveDestroyed()
	l.frame++
}

// Render draws every live object to r.
func (l *Loop) Render(r Renderer) {
	l.manager.ForEach(func(obj *GameObject) {
		obj.Render(r)
	})
}

// processInputEvents drains all pending events in the queue.
func (l *Loop) processInputEvents() {
	l.shots = l.shots[:0]
	for _, event := range l.events.ReadAllMessages() {
		switch event.Type {
		case types.InputEventClose:
			log.Info("Received event to close window")
			l.Stop()
		case types.InputEventKeyPress:
			switch event.Key {
			case types.KeyQ, types.KeyEscape:
				log.Info("Received event that %s key was pressed", event.Key)
				l.Stop()
			case types.KeyZ:
				log.Info("Received event that %s key was pressed", event.Key)
			default:
				log.Trace("Ignoring key press %s", event.Key)
			}
		case types.InputEventKeyHeld:
			log.Info("%s key pressed.", event.Key)
		case types.InputEventMousePress:
			l.shots = append(l.shots, kinematic.NewVector(event.X, event.Y))
		case types.InputEventResize:
			if event.Width <= 0 || event.Height <= 0 {
				log.Warn("Ignoring resize to %dx%d", event.Width, event.Height)
				continue
			}
			l.viewport = NewViewport(event.Width, event.Height)
			l.manager.SetSpace(collisions.NewCollisionSpace(event.Width, event.Height))
			log.Debug("Viewport resized to %dx%d", event.Width, event.Height)
		default:
			log.Error("Unhandled input event type: %s", event.Type)
		}
		if l.state == LoopStateStopped {
			return
		}
	}
}

func (l *Loop) applyPlayerCommands(directions []types.Direction) {
	player, ok := l.Player()
	if !ok {
		return
	}
	for _, direction := range directions {
		player.Move(direction)
	}
	for _, target := range l.shots {
		if err := player.Shoot(target.X, target.Y, l.commands); err != nil {
			log.Warn("Rejected shot: %v", err)
		}
	}
}
