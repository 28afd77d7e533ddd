package game

// Rand is the random source used for apple placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SpawnApple puts an apple on a uniformly random empty cell.
// It returns false and leaves the board untouched when no cell is free.
func SpawnApple(b *Board, rng Rand) bool {
	if b.Count(KindEmpty) == 0 {
		return false
	}

	for {
		i := Index(rng.Intn(Width), rng.Intn(Height))
		if b[i].IsEmpty() {
			b[i] = CellApple
			return true
		}
	}
}
