package utils

import (
	"log"

	"aeropartner/stats"
	"aeropartner/storage"

	"github.com/robfig/cron/v3"
)

// InitializeStatsScheduler starts the nightly job that recomputes the
// denormalized partner counters from enrollment rows. Request handlers
// keep the counters up to date transactionally; this job heals any drift
// left by writes that bypassed the API.
func InitializeStatsScheduler(st *storage.Storage, spec string) *cron.Cron {
	log.Println("[STATS-SCHEDULER] Initializing partner stats scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(spec, func() {
		log.Println("[STATS-SCHEDULER] Running partner counter reconciliation...")
		ReconcilePartnerStats(st)
	}); err != nil {
		log.Printf("[STATS-SCHEDULER] Invalid cron spec %q: %v", spec, err)
		return c
	}

	c.Start()
	log.Printf("[STATS-SCHEDULER] Partner stats scheduler started (%s)", spec)
	return c
}

// ReconcilePartnerStats recomputes completedCourses, coursesInProgress
// and completionRate for every partner and writes back the ones that
// diverged.
func ReconcilePartnerStats(st *storage.Storage) {
	partners, err := st.GetAllPartners()
	if err != nil {
		log.Printf("[STATS-SCHEDULER] Error fetching partners: %v", err)
		return
	}

	fixed := 0
	for _, p := range partners {
		enrollments, err := st.GetPartnerEnrollments(p.ID)
		if err != nil {
			log.Printf("[STATS-SCHEDULER] Error fetching enrollments for partner %d: %v", p.ID, err)
			continue
		}

		snap := stats.PartnerSnapshot(enrollments)
		if snap.CompletedCourses == p.CompletedCourses &&
			snap.CoursesInProgress == p.CoursesInProgress &&
			snap.CompletionRate == p.CompletionRate {
			continue
		}

		if _, err := st.UpdatePartner(p.ID, map[string]interface{}{
			"completed_courses":   snap.CompletedCourses,
			"courses_in_progress": snap.CoursesInProgress,
			"completion_rate":     snap.CompletionRate,
		}); err != nil {
			log.Printf("[STATS-SCHEDULER] Error updating partner %d: %v", p.ID, err)
			continue
		}
		fixed++
	}

	log.Printf("[STATS-SCHEDULER] Reconciliation finished, %d partner(s) corrected", fixed)
}
