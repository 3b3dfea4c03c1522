package game

// Container is the car being filled.
type Container struct {
	Car       CarType
	Capacity  float64
	FillLevel float64
	Bounds    Rect
}

// NewContainer creates an empty container spanning the whole board.
func NewContainer(car CarType, capacity float64) *Container {
	return &Container{
		Car:      car,
		Capacity: capacity,
		Bounds:   Rect{X: 0, Y: 0, W: BoardWidth, H: BoardHeight},
	}
}

// Overflowing reports whether the fill level reached capacity.
func (c *Container) Overflowing() bool {
	return c.FillLevel >= c.Capacity
}

// FillRatio returns FillLevel/Capacity clamped to [0, 1].
func (c *Container) FillRatio() float64 {
	if c.Capacity <= 0 {
		return 1
	}
	r := c.FillLevel / c.Capacity
	if r > 1 {
		return 1
	}
	return r
}

// Piece is the single falling catfish.
type Piece struct {
	Category Category
	Size     int
	Rect     Rect
	Score    int
}

// NewPiece creates a piece of the given size with its top-left corner at (x, y).
func NewPiece(cat Category, size, score int, x, y float64) *Piece {
	return &Piece{
		Category: cat,
		Size:     size,
		Score:    score,
		Rect: Rect{
			X: x,
			Y: y,
			W: float64(size * PieceWidthScale),
			H: float64(size * PieceHeightScale),
		},
	}
}

// RestedPiece is a piece that has come to rest. It never moves again.
type RestedPiece struct {
	Category Category
	Size     int
	Rect     Rect
	Score    int
}

func (p *Piece) rest() RestedPiece {
	return RestedPiece{
		Category: p.Category,
		Size:     p.Size,
		Rect:     p.Rect,
		Score:    p.Score,
	}
}
