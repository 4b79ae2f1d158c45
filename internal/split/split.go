package split

import (
	"math"
	"math/rand/v2"

	"github.com/backmassage/imgmanifest/internal/dataset"
)

// NewRand returns the generator Propose draws from, seeded from seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}

// ValCount returns how many of n train items of one label go to validation.
// Halves round to even.
func ValCount(n int, ratio float64) int {
	nVal := int(math.RoundToEven(float64(n) * ratio))
	if nVal == 0 && n > 1 {
		nVal = 1
	}
	if nVal > n {
		nVal = n
	}
	return nVal
}

// Propose assigns a subset to every record. Labels are sampled in order of
// their first train record; rng is shared across labels in that order.
// ratio must be within [0, 1].
func Propose(records []dataset.Record, ratio float64, rng *rand.Rand) []dataset.Proposal {
	proposals := make([]dataset.Proposal, len(records))
	for i, r := range records {
		proposals[i] = dataset.Proposal{Record: r, Subset: r.Split}
	}

	var order []string
	groups := make(map[string][]int)
	for i, r := range records {
		if r.Split != dataset.TrainSplit {
			continue
		}
		if _, ok := groups[r.Label]; !ok {
			order = append(order, r.Label)
		}
		groups[r.Label] = append(groups[r.Label], i)
	}

	for _, label := range order {
		idxs := groups[label]
		nVal := ValCount(len(idxs), ratio)
		rng.Shuffle(len(idxs), func(i, j int) {
			idxs[i], idxs[j] = idxs[j], idxs[i]
		})
		for k, i := range idxs {
			if k < nVal {
				proposals[i].Subset = dataset.ValSubset
			} else {
				proposals[i].Subset = dataset.TrainSplit
			}
		}
	}
	return proposals
}
