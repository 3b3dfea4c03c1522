package game

// CheckOver returns the terminal condition reached once a piece came to rest
// at last, or OverNone if play continues.
func CheckOver(c *Container, rested []RestedPiece, last Rect) OverReason {
	switch {
	case c.Overflowing():
		return OverOverflow
	case len(rested) >= MaxRestedPieces:
		return OverStackLimit
	case last.Y <= c.Bounds.Y:
		return OverCeiling
	default:
		return OverNone
	}
}

// ShouldLevelUp returns true if score clears the given level.
func ShouldLevelUp(score, level int) bool {
	return score >= level*LevelScoreStep
}
