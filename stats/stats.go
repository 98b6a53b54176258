// Package stats holds the pure derived-metric computations shown on the
// partner dashboard. Everything here operates on enrollment rows already
// fetched by the storage layer and performs no I/O.
package stats

import (
	"math"

	"aeropartner/models"
)

// CompletionRate returns the percentage of enrollments that reached
// completed status. 0 when there are no enrollments.
func CompletionRate(enrollments []models.Enrollment) float64 {
	if len(enrollments) == 0 {
		return 0
	}
	completed := 0
	for _, e := range enrollments {
		if e.Status == models.StatusCompleted {
			completed++
		}
	}
	return round2(float64(completed) / float64(len(enrollments)) * 100)
}

// AverageProgress returns the mean progress across all enrollments.
// 0 when there are no enrollments.
func AverageProgress(enrollments []models.Enrollment) float64 {
	if len(enrollments) == 0 {
		return 0
	}
	var sum float64
	for _, e := range enrollments {
		sum += e.Progress
	}
	return round2(sum / float64(len(enrollments)))
}

// AverageGrade returns the mean grade over graded enrollments only. The
// second return value is false when no enrollment has a grade yet, so
// callers can show a placeholder instead of a literal zero.
func AverageGrade(enrollments []models.Enrollment) (float64, bool) {
	var sum float64
	graded := 0
	for _, e := range enrollments {
		if e.Grade != nil {
			sum += *e.Grade
			graded++
		}
	}
	if graded == 0 {
		return 0, false
	}
	return round2(sum / float64(graded)), true
}

// TierProgress returns the fixed gauge position for a classification
// tier. These are cosmetic step values for the dashboard, not a computed
// share of any continuous metric. Unknown tiers map to 0.
func TierProgress(tier string) int {
	switch tier {
	case models.ClassificationBronze:
		return 33
	case models.ClassificationSilver:
		return 66
	case models.ClassificationGold:
		return 100
	}
	return 0
}

// NextTier returns the classification above the given one, or "" when
// the tier is gold (terminal) or unknown. Promotion itself is
// operator-driven; no write path inspects thresholds.
func NextTier(tier string) string {
	switch tier {
	case models.ClassificationBronze:
		return models.ClassificationSilver
	case models.ClassificationSilver:
		return models.ClassificationGold
	}
	return ""
}

// Snapshot is the counter set a partner record should carry for a given
// set of enrollment rows.
type Snapshot struct {
	CompletedCourses  int
	CoursesInProgress int
	CompletionRate    float64
}

// PartnerSnapshot recomputes the denormalized partner counters from
// enrollment rows. The reconciliation job writes this back so any drift
// left by a missed update path heals overnight.
func PartnerSnapshot(enrollments []models.Enrollment) Snapshot {
	snap := Snapshot{CompletionRate: CompletionRate(enrollments)}
	for _, e := range enrollments {
		switch e.Status {
		case models.StatusCompleted:
			snap.CompletedCourses++
		case models.StatusEnrolled, models.StatusInProgress:
			snap.CoursesInProgress++
		}
	}
	return snap
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
