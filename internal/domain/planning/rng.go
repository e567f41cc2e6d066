package planning

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
)

// Seeded pseudo-randomness for generation. A splitmix64 stream keyed by
// a deterministic hash of (seed, date, slot, attempt) guarantees that
// permuting the request's slot order never changes another slot's
// outcome, and that identical inputs replay byte-identical plans.

// rng is a splitmix64 sequence.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	return &rng{state: seed}
}

// next advances the splitmix64 state and returns the next value.
func (r *rng) next() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// intn returns a value in [0, n). Modulo bias is negligible for pool
// sizes and irrelevant to the determinism contract.
func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// rangeInt returns a value in [lo, hi] inclusive.
func (r *rng) rangeInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.intn(hi-lo+1)
}

// subSeed derives the per-(date, slot, attempt) sub-seed from the
// master seed.
func subSeed(seed int64, date time.Time, slot catalog.MealSlot, attempt int) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s|%d", seed, date.Format(dateLayout), slot, attempt)
	return h.Sum64()
}
