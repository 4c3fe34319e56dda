package physics

import (
	"github.com/lixenwraith/cinefx/vmath"
)

// ShatterProfile defines when a contact between two bodies is destructive
// Profiles are typically pre-defined as package variables
type ShatterProfile struct {
	ContactDistance float64 // Centers closer than this are in contact
	SpeedThreshold  float64 // At least one body must be faster than this
}

// Triggers reports whether a contact between a and b shatters them
// Both clauses are required: slow contacts and fast misses are ignored
func (p ShatterProfile) Triggers(posA, posB, velA, velB vmath.Vec3F) bool {
	thrSq := p.SpeedThreshold * p.SpeedThreshold
	if vmath.V3FMagSq(velA) <= thrSq && vmath.V3FMagSq(velB) <= thrSq {
		return false
	}
	return vmath.V3FDistSq(posA, posB) < p.ContactDistance*p.ContactDistance
}

// Body is the minimal view needed for pairwise checks
type Body struct {
	Pos vmath.Vec3F
	Vel vmath.Vec3F
}

// ShatterPairs runs the O(n²) pairwise check and returns the indices of every body that
// participates in at least one destructive contact, in ascending order without duplicates
func ShatterPairs(bodies []Body, profile ShatterProfile, out []int) []int {
	out = out[:0]
	if len(bodies) < 2 {
		return out
	}
	flagged := make([]bool, len(bodies))
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if profile.Triggers(bodies[i].Pos, bodies[j].Pos, bodies[i].Vel, bodies[j].Vel) {
				flagged[i] = true
				flagged[j] = true
			}
		}
	}
	for i, f := range flagged {
		if f {
			out = append(out, i)
		}
	}
	return out
}
