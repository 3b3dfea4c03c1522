package game

// spawnPiece draws the next piece and places it just above the container.
func spawnPiece(rng Rand, t Tuning, c *Container, rested []RestedPiece) *Piece {
	cat := Categories[rng.IntN(len(Categories))]
	spec := t.Category(cat)
	size := intBetween(rng, spec.MinSize, spec.MaxSize)

	// The column is chosen so that the widest piece of the category fits.
	x := c.Bounds.X
	if span := int(c.Bounds.W) - spec.MaxSize*PieceWidthScale; span > 0 {
		x += float64(rng.IntN(span + 1))
	}

	p := NewPiece(cat, size, spec.Score, x, 0)
	p.Rect.Y = c.Bounds.Y - p.Rect.H
	p.Rect = clearSpawn(p.Rect, c, rested)
	return p
}

// clearSpawn lifts rect until it no longer collides. If no lift was needed
// the piece is nudged one step down, provided that step is free too.
func clearSpawn(rect Rect, c *Container, rested []RestedPiece) Rect {
	lifted := false
	for IsBlocked(rect, c, rested) {
		rect = rect.Translate(0, -SpawnNudge)
		lifted = true
	}
	if lifted {
		return rect
	}
	if next := rect.Translate(0, SpawnNudge); !IsBlocked(next, c, rested) {
		return next
	}
	return rect
}
