package triage

import "time"

// DefaultAvgServiceMinutes is the assumed per-patient treatment time used
// by the linear wait projection when no deployment value is configured.
const DefaultAvgServiceMinutes = 20

// baseWaitMinutes is the floor wait per urgency tier.
var baseWaitMinutes = map[Tier]int{
	TierCritical: 5,
	TierHigh:     15,
	TierMedium:   30,
	TierLow:      45,
	TierRoutine:  60,
}

// Estimator derives advisory wait times from a record and a queue snapshot.
// The projection is an estimate for display, not a guarantee.
type Estimator struct {
	AvgServiceMinutes int
	Now               func() time.Time
}

// NewEstimator creates an estimator with the given per-patient service
// time; values <= 0 fall back to the default.
func NewEstimator(avgServiceMinutes int) *Estimator {
	if avgServiceMinutes <= 0 {
		avgServiceMinutes = DefaultAvgServiceMinutes
	}
	return &Estimator{AvgServiceMinutes: avgServiceMinutes, Now: time.Now}
}

// ElapsedMinutes is the whole minutes since arrival, floored at zero so
// clock skew never yields a negative wait.
func (e *Estimator) ElapsedMinutes(rec *PatientRecord) int {
	mins := int(e.Now().Sub(rec.ArrivalTime).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// Estimate returns the advisory wait in minutes. Waiting records get a
// linear projection (tier base wait plus patients ahead times the average
// service time); in-progress and completed records report elapsed time.
func (e *Estimator) Estimate(rec *PatientRecord, snapshot []*PatientRecord) int {
	if rec.Status != StatusWaiting {
		return e.ElapsedMinutes(rec)
	}
	return baseWaitMinutes[rec.PriorityTier] + e.patientsAhead(rec, snapshot)*e.AvgServiceMinutes
}

// patientsAhead counts the active records of equal-or-higher urgency that
// precede rec in the snapshot's queue order.
func (e *Estimator) patientsAhead(rec *PatientRecord, snapshot []*PatientRecord) int {
	ahead := 0
	for _, other := range snapshot {
		if other.ID == rec.ID {
			break
		}
		if other.Status == StatusCompleted {
			continue
		}
		if other.PriorityTier <= rec.PriorityTier {
			ahead++
		}
	}
	return ahead
}
