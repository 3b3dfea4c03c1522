package game

// Container dimensions in board units.
const (
	BoardWidth  = 800
	BoardHeight = 600
)

// Piece geometry: a piece of size n occupies n*PieceWidthScale by n*PieceHeightScale.
const (
	PieceWidthScale  = 20
	PieceHeightScale = 10
)

// Movement
const (
	MoveStep      = 10.0 // units per MoveLeft/MoveRight
	DropStep      = 1.0  // units per hard-drop iteration
	SpawnNudge    = 1.0  // units per spawn adjustment step
	BaseFallSpeed = 1.0  // units per tick at level 1
	FallSpeedStep = 0.5  // added to fall speed on each level-up
)

// Session rules
const (
	MaxRestedPieces = 10
	LevelScoreStep  = 100 // level n is cleared at n*LevelScoreStep points
)
