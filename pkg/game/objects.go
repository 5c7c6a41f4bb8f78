package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/cbodonnell/blaster/pkg/game/constants"
	"github.com/cbodonnell/blaster/pkg/game/types"
	"github.com/cbodonnell/blaster/pkg/kinematic"
	"github.com/cbodonnell/blaster/pkg/log"
	"github.com/solarlune/resolv"
)

// ErrCannotShoot is returned when an object that is not a player is asked to shoot.
var ErrCannotShoot = errors.New("object cannot shoot")

// ObjectID is a stable handle to an object owned by a Manager.
// The zero value means the object has not been added to a manager.
type ObjectID uint32

// Frame carries the per-update context handed to every object.
type Frame struct {
	// DeltaTime is the wall-clock time in seconds since the previous frame.
	DeltaTime float64
	// Viewport is the renderable area used for bounds checks.
	Viewport Viewport
	// Commands collects spawn requests made during the frame.
	Commands *Commands
}

// behavior is the per-kind update rule applied after integration.
type behavior interface {
	afterIntegrate(o *GameObject, frame *Frame)
	render(o *GameObject, r Renderer)
}

// GameObject is a single moving, renderable, destructible entity.
type GameObject struct {
	id       ObjectID
	owner    *Manager
	kind     types.Kind
	velocity kinematic.Vector
	maxSpeed float64
	// boundingRadius is the distance from the centre at which this object spawns projectiles.
	boundingRadius float64
	outline        float64
	fill           color.Color
	destroyed      bool
	released       bool
	// shape holds the object's position and bounding box, outline excluded.
	// Its Position is the top-left corner.
	shape    *resolv.Object
	behavior behavior
}

// NewObjectOptions contains options for creating a game object.
// Zero values fall back to the defaults of the object's kind.
type NewObjectOptions struct {
	// X is the x-coordinate of the object's centre.
	X float64
	// Y is the y-coordinate of the object's centre.
	Y float64
	// MaxSpeed overrides the kind's maximum speed.
	MaxSpeed float64
	// BoundingRadius overrides the kind's bounding radius.
	BoundingRadius float64
	// Color overrides the kind's fill colour.
	Color color.Color
}

func newGameObject(kind types.Kind, b behavior, w, h, outline, maxSpeed, radius float64, fill color.Color, opts NewObjectOptions) *GameObject {
	if opts.MaxSpeed != 0 {
		maxSpeed = opts.MaxSpeed
	}
	if opts.BoundingRadius != 0 {
		radius = opts.BoundingRadius
	}
	if opts.Color != nil {
		fill = opts.Color
	}
	o := &GameObject{
		kind:           kind,
		maxSpeed:       maxSpeed,
		boundingRadius: radius,
		outline:        outline,
		fill:           fill,
		behavior:       b,
	}
	o.shape = resolv.NewObject(opts.X-w/2, opts.Y-h/2, w, h, kind.CollisionSpaceTag())
	o.shape.Data = o
	return o
}

// NewPlayer creates a player-controlled rectangle.
func NewPlayer(opts NewObjectOptions) *GameObject {
	return newGameObject(
		types.KindPlayer,
		playerBehavior{},
		constants.PlayerWidth,
		constants.PlayerHeight,
		constants.PlayerOutlineThickness,
		constants.PlayerMaxSpeed,
		constants.PlayerBoundingRadius,
		constants.PlayerColor,
		opts,
	)
}

// NewPlayerBullet creates a bullet travelling at velocity.
func NewPlayerBullet(opts NewObjectOptions, velocity kinematic.Vector) *GameObject {
	diameter := 2 * constants.PlayerBulletRadius
	o := newGameObject(
		types.KindPlayerBullet,
		playerBulletBehavior{},
		diameter,
		diameter,
		constants.PlayerBulletOutlineThickness,
		constants.PlayerBulletMaxSpeed,
		constants.PlayerBulletRadius+constants.PlayerBulletOutlineThickness,
		constants.PlayerBulletColor,
		opts,
	)
	o.velocity = velocity
	return o
}

// NewEnemy creates an enemy rectangle. Enemies move only when commanded.
func NewEnemy(opts NewObjectOptions) *GameObject {
	return newGameObject(
		types.KindEnemy,
		enemyBehavior{},
		constants.EnemyWidth,
		constants.EnemyHeight,
		constants.EnemyOutlineThickness,
		constants.EnemyMaxSpeed,
		constants.EnemyWidth+2*constants.EnemyOutlineThickness,
		constants.EnemyColor,
		opts,
	)
}

func (o *GameObject) ID() ObjectID {
	return o.id
}

func (o *GameObject) Kind() types.Kind {
	return o.kind
}

// Position returns the centre of the object's shape.
func (o *GameObject) Position() kinematic.Vector {
	return kinematic.NewVector(
		o.shape.Position.X+o.shape.Size.X/2,
		o.shape.Position.Y+o.shape.Size.Y/2,
	)
}

func (o *GameObject) Velocity() kinematic.Vector {
	return o.velocity
}

func (o *GameObject) SetVelocity(v kinematic.Vector) {
	o.velocity = v
}

func (o *GameObject) MaxSpeed() float64 {
	return o.maxSpeed
}

func (o *GameObject) BoundingRadius() float64 {
	return o.boundingRadius
}

func (o *GameObject) Size() kinematic.Vector {
	return kinematic.NewVector(o.shape.Size.X, o.shape.Size.Y)
}

// Shape returns the object's bounding box, or nil once released.
func (o *GameObject) Shape() *resolv.Object {
	if o.released {
		return nil
	}
	return o.shape
}

func (o *GameObject) IsDestroyed() bool {
	return o.destroyed
}

// Destroy flags the object for removal at the manager's next sweep.
func (o *GameObject) Destroy() {
	o.destroyed = true
}

// SetPosition moves the object's centre to p and refreshes its cells in the
// collision space.
func (o *GameObject) SetPosition(p kinematic.Vector) {
	o.shape.Position.X = p.X - o.shape.Size.X/2
	o.shape.Position.Y = p.Y - o.shape.Size.Y/2
	if o.shape.Space != nil {
		o.shape.Update()
	}
}

// Update integrates velocity over the frame and applies the kind's rule.
func (o *GameObject) Update(frame *Frame) {
	if o.destroyed {
		return
	}
	dt := frame.DeltaTime
	if dt < 0 {
		dt = 0
	}
	o.SetPosition(kinematic.Integrate(o.Position(), o.velocity, dt))
	o.behavior.afterIntegrate(o, frame)
}

// Render draws the object. It never changes simulation state.
func (o *GameObject) Render(r Renderer) {
	if o.destroyed {
		return
	}
	o.behavior.render(o, r)
}

// Move adds the object's max speed to the velocity axis of direction.
// Calls accumulate, so opposite directions in one frame cancel.
func (o *GameObject) Move(direction types.Direction) {
	switch direction {
	case types.DirectionUp:
		o.velocity.Y -= o.maxSpeed
	case types.DirectionDown:
		o.velocity.Y += o.maxSpeed
	case types.DirectionLeft:
		o.velocity.X -= o.maxSpeed
	case types.DirectionRight:
		o.velocity.X += o.maxSpeed
	}
}

// Shoot requests a bullet on the object's bounding radius, aimed at (x, y).
//
// The bullet velocity is the spawn offset from the centre multiplied by the
// bullet's max speed, not a unit direction, so bullet speed grows with the
// shooter's bounding radius.
func (o *GameObject) Shoot(x, y float64, commands *Commands) error {
	if o.kind != types.KindPlayer {
		return fmt.Errorf("%s: %w", o.kind, ErrCannotShoot)
	}
	center := o.Position()
	spawn, err := kinematic.MapToRadius(center, kinematic.NewVector(x, y), o.boundingRadius)
	if err != nil {
		return fmt.Errorf("failed to aim at (%0.1f, %0.1f): %w", x, y, err)
	}
	bullet := NewPlayerBullet(NewObjectOptions{X: spawn.X, Y: spawn.Y}, kinematic.Vector{})
	bullet.velocity = spawn.Sub(center).Scale(bullet.maxSpeed)
	commands.Spawn(bullet)
	log.Info("pew!")
	return nil
}

// release detaches the object from its manager. Called only by the owning
// manager after the shape has left the collision space. The shape keeps the
// final position so Position stays readable.
func (o *GameObject) release() {
	o.destroyed = true
	o.released = true
	o.owner = nil
	o.shape.Data = nil
	o.shape.Space = nil
	o.behavior = nil
}

type playerBehavior struct{}

func (playerBehavior) afterIntegrate(o *GameObject, _ *Frame) {
	o.velocity = kinematic.Vector{}
}

func (playerBehavior) render(o *GameObject, r Renderer) {
	renderRect(o, r)
}

type playerBulletBehavior struct{}

func (playerBulletBehavior) afterIntegrate(o *GameObject, frame *Frame) {
	if !frame.Viewport.Contains(o.Position()) {
		o.Destroy()
	}
}

func (playerBulletBehavior) render(o *GameObject, r Renderer) {
	radius := o.shape.Size.X / 2
	cx := o.shape.Position.X + radius
	cy := o.shape.Position.Y + radius
	r.FillCircle(cx, cy, radius, o.fill)
	r.StrokeCircle(cx, cy, radius+o.outline/2, o.outline, constants.OutlineColor)
}

type enemyBehavior struct{}

func (enemyBehavior) afterIntegrate(o *GameObject, _ *Frame) {
	o.velocity = kinematic.Vector{}
}

func (enemyBehavior) render(o *GameObject, r Renderer) {
	renderRect(o, r)
}

func renderRect(o *GameObject, r Renderer) {
	x, y := o.shape.Position.X, o.shape.Position.Y
	w, h := o.shape.Size.X, o.shape.Size.Y
	r.FillRect(x, y, w, h, o.fill)
	// the outline sits outside the rectangle
	half := o.outline / 2
	r.StrokeRect(x-half, y-half, w+o.outline, h+o.outline, o.outline, constants.OutlineColor)
}
