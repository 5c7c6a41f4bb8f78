package constants

import "image/color"

const (
	// ViewportWidth is the default window width in pixels
	ViewportWidth int = 768
	// ViewportHeight is the default window height in pixels
	ViewportHeight int = 480
	// CollisionCellSize is the cell size of the spatial registry
	CollisionCellSize int = 16

	// DefaultMaxSpeed is the speed used when an object does not set one
	DefaultMaxSpeed float64 = 100.0

	// PlayerWidth is the width of the player rectangle
	PlayerWidth float64 = 20.0
	// PlayerHeight is the height of the player rectangle
	PlayerHeight float64 = 20.0
	// PlayerOutlineThickness is the outline drawn around the player
	PlayerOutlineThickness float64 = 5.0
	// PlayerBoundingRadius is the local bounds width of the outlined player.
	// Bullets spawn this far from the player's centre.
	PlayerBoundingRadius float64 = PlayerWidth + 2*PlayerOutlineThickness
	// PlayerMaxSpeed is the speed added per held direction
	PlayerMaxSpeed float64 = DefaultMaxSpeed

	// PlayerBulletRadius is the radius of the bullet circle
	PlayerBulletRadius float64 = 5.0
	// PlayerBulletOutlineThickness is the outline drawn around a bullet
	PlayerBulletOutlineThickness float64 = 5.0
	// PlayerBulletMaxSpeed multiplies the spawn offset into the bullet velocity
	PlayerBulletMaxSpeed float64 = 10.0

	// EnemyWidth is the width of the enemy rectangle
	EnemyWidth float64 = 20.0
	// EnemyHeight is the height of the enemy rectangle
	EnemyHeight float64 = 20.0
	// EnemyOutlineThickness is the outline drawn around an enemy
	EnemyOutlineThickness float64 = 5.0
	// EnemyMaxSpeed is the speed added per direction command
	EnemyMaxSpeed float64 = DefaultMaxSpeed
	// EnemyStartingX is the x-coordinate the first enemy spawns at
	EnemyStartingX float64 = 128.0
	// EnemyStartingY is the y-coordinate the first enemy spawns at
	EnemyStartingY float64 = 96.0
)

var (
	// ClearColor is the colour the frame is cleared to
	ClearColor = color.RGBA{255, 255, 255, 255}
	// OutlineColor is the outline colour of every object
	OutlineColor = color.RGBA{0, 0, 0, 255}
	// PlayerColor is the fill colour of the player
	PlayerColor = color.RGBA{255, 255, 255, 255}
	// PlayerBulletColor is the fill colour of bullets
	PlayerBulletColor = color.RGBA{255, 255, 255, 255}
	// EnemyColor is the fill colour of enemies
	EnemyColor = color.RGBA{255, 0, 0, 255}
	// HUDColor is the colour of overlay text
	HUDColor = color.RGBA{0, 0, 0, 255}
)
