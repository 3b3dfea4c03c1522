package game

// IsBlocked reports whether a piece may not occupy candidate: either it would
// sink below the container floor or it overlaps a rested piece.
// The container's side edges are not checked.
func IsBlocked(candidate Rect, c *Container, rested []RestedPiece) bool {
	if candidate.Bottom() > c.Bounds.Bottom() {
		return true
	}
	for _, p := range rested {
		if candidate.Overlaps(p.Rect) {
			return true
		}
	}
	return false
}
