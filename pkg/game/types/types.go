package types

// Kind tags the variant of a game object.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindPlayerBullet
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindPlayerBullet:
		return "PlayerBullet"
	case KindEnemy:
		return "Enemy"
	}
	return "Unknown"
}

const (
	CollisionSpaceTagPlayer       string = "player"
	CollisionSpaceTagPlayerBullet string = "player-bullet"
	CollisionSpaceTagEnemy        string = "enemy"
)

// CollisionSpaceTag returns the resolv tag used for objects of kind k.
func (k Kind) CollisionSpaceTag() string {
	switch k {
	case KindPlayer:
		return CollisionSpaceTagPlayer
	case KindPlayerBullet:
		return CollisionSpaceTagPlayerBullet
	case KindEnemy:
		return CollisionSpaceTagEnemy
	}
	return ""
}

// Direction is a movement input.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	}
	return "Unknown"
}
