package pricing

import (
	"hash/fnv"
	"math/rand"
	"strconv"
)

// unitNoise returns a pseudo-random value in [-1, 1] fully determined by
// (turn, sector, commodity, seed). Re-running a turn reproduces the exact
// same noise, which keeps simulation runs testable.
func unitNoise(turn, sectorID int, commodityID string, seed int64) float64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.Itoa(turn)))
	h.Write([]byte{':'})
	h.Write([]byte(strconv.Itoa(sectorID)))
	h.Write([]byte{':'})
	h.Write([]byte(commodityID))
	h.Write([]byte{':'})
	h.Write([]byte(strconv.FormatInt(seed, 10)))

	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return rng.Float64()*2 - 1
}
