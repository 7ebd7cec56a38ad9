package safari

// Gameplay tuning shared by every difficulty. Per-difficulty and per-animal
// values live in config.
const (
	// Maze decoration
	GrassChance  = 0.06 // draw below this turns a path into grass
	WaterChance  = 0.10 // draw below this (and not grass) turns a path into water
	MinMazeSize  = 3
	ArtifactLow  = 0.25 // quadrant target fraction
	ArtifactHigh = 0.75

	// Terrain speed
	GrassSpeed = 0.8
	WaterSpeed = 0.65

	// Predators
	FrightenedSpeed = 0.7 // predator speed multiplier while frightened
	HawkLead        = 4.0 // tiles ahead of the player
	SnakeSightRange = 6.0
	SnakeTurnChance = 0.04 // per frame while wandering

	// Collisions
	CollisionRadius = 0.45
	KnockbackFactor = 1.2
	BumpWindow      = 0.5 // seconds a bumped predator is ignored

	// Scoring
	PickupScore     = 10
	ArtifactScore   = 50
	BumpScore       = 200
	LevelClearBonus = 1000

	// Clock
	MaxFrameDT   = 0.05 // seconds
	BannerLength = 1.5  // seconds the level banner stays up
)
