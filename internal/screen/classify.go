package screen

import "MomentumScreener/internal/model"

// Classify partitions filter-passing candidates into the two momentum groups
// by MA20 slope. Every candidate lands in exactly one group: slopes in
// [strongMin, SlopeMax) are strong momentum, everything below strongMin is
// potential. Slopes at or above the ceiling never reach this stage — the
// filter pipeline already excluded them.
func Classify(candidates []model.Candidate, strongMin float64) (strong, potential model.Group) {
	strong = model.Group{Name: model.GroupStrongMomentum}
	potential = model.Group{Name: model.GroupPotential}
	for _, c := range candidates {
		if c.Features.Slope >= strongMin {
			strong.Candidates = append(strong.Candidates, c)
		} else {
			potential.Candidates = append(potential.Candidates, c)
		}
	}
	return strong, potential
}
