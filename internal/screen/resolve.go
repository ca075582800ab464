package screen

import (
	"math"
	"sort"

	"MomentumScreener/internal/model"
)

// Resolve caps the group at maxSize with a deterministic two-stage reduction.
// Candidates closing at their 5-day low are demoted; the cap is filled from
// the non-demoted pool ordered by |distance| ascending, then backfilled from
// the demoted pool in the same order until the cap is reached or the group is
// exhausted. Groups at or under the cap keep their members and are only
// reordered for stable downstream presentation.
func Resolve(g model.Group, maxSize int) model.Group {
	out := model.Group{Name: g.Name, Candidates: append([]model.Candidate(nil), g.Candidates...)}
	sortByDistance(out.Candidates)
	if len(out.Candidates) <= maxSize {
		return out
	}

	var preferred, demoted []model.Candidate
	for _, c := range out.Candidates {
		if c.AtFiveDayLow {
			demoted = append(demoted, c)
		} else {
			preferred = append(preferred, c)
		}
	}

	if len(preferred) >= maxSize {
		out.Candidates = preferred[:maxSize]
		return out
	}

	// Too many candidates sit at a 5-day low to fill the cap from the
	// preferred pool alone; backfill the shortfall from the demoted pool.
	picked := append([]model.Candidate(nil), preferred...)
	picked = append(picked, demoted[:maxSize-len(preferred)]...)
	sortByDistance(picked)
	out.Candidates = picked
	return out
}

// sortByDistance orders by |distance| ascending, ties broken by symbol so the
// result is deterministic across runs.
func sortByDistance(candidates []model.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di := math.Abs(candidates[i].Features.Distance)
		dj := math.Abs(candidates[j].Features.Distance)
		if di != dj {
			return di < dj
		}
		return candidates[i].Features.Symbol < candidates[j].Features.Symbol
	})
}
