// Package scale derives 0–255 visual intensities from subject link counts.
//
// Intensities are normalized against per-run maxima computed by
// [ComputeMaxima] over the whole index. The maxima must be recomputed before
// every materialization; nothing here tracks them incrementally.
package scale

import (
	"fmt"
	"math"

	"github.com/matzehuels/wordweb/pkg/index"
)

// MaxIntensity is the top of the display range.
const MaxIntensity = 255

// Maxima holds the normalization denominators for one materialization pass.
type Maxima struct {
	LinkCount      int // largest SubjectEntry.LinkCount
	PredicateCount int // largest SubjectEntry.NumPredicates
}

// ComputeMaxima scans every subject once. It returns ok=false when the index
// has no subjects, in which case the maxima are undefined.
func ComputeMaxima(idx *index.Index) (m Maxima, ok bool) {
	subjects := idx.Subjects()
	if len(subjects) == 0 {
		return Maxima{}, false
	}
	for _, s := range subjects {
		m.LinkCount = max(m.LinkCount, s.LinkCount())
		m.PredicateCount = max(m.PredicateCount, s.NumPredicates())
	}
	return m, true
}

// Intensity maps value onto [0, MaxIntensity] relative to maximum, rounding
// half away from zero. A non-positive maximum yields 0.
func Intensity(value, maximum int) int {
	if maximum <= 0 || value <= 0 {
		return 0
	}
	v := int(math.Round(MaxIntensity * float64(value) / float64(maximum)))
	return min(v, MaxIntensity)
}

// NodeIntensity is the fill intensity of a subject node.
func (m Maxima) NodeIntensity(s *index.SubjectEntry) int {
	return Intensity(s.LinkCount(), m.LinkCount)
}

// EdgeIntensity is the intensity of every edge emitted from s.
func (m Maxima) EdgeIntensity(s *index.SubjectEntry) int {
	return Intensity(s.NumPredicates(), m.PredicateCount)
}

// NodeStyle returns the fill style for a node of the given intensity.
// Only the red channel is used.
func NodeStyle(intensity int) string {
	return fmt.Sprintf("fill-color: rgb(%d,0,0);", intensity)
}

// EdgeStyle returns the fill style for an edge of the given intensity.
// The red and blue channels carry the same value.
func EdgeStyle(intensity int) string {
	return fmt.Sprintf("fill-color: rgb(%d,0,%d);", intensity, intensity)
}
