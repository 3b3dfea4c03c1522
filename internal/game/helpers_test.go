package game

// scriptedRand replays vals in order, wrapping around. Each value is reduced
// modulo n so any script is valid for any draw.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// newTestEngine builds an engine over a container of the given capacity,
// drawing only minimum-size small pieces at x=0.
func newTestEngine(capacity float64) *Engine {
	return NewEngine(NewContainer(Sedan, capacity), DefaultTuning(), &scriptedRand{})
}

// settleWith replaces the active piece with one of the given size and rests it
// low in the container, clear of the ceiling.
func settleWith(e *Engine, cat Category, size int) {
	e.piece = NewPiece(cat, size, e.tuning.Category(cat).Score, 0, 500)
	e.settle()
}
