// Package triage implements the clinical urgency core: priority scoring of
// incoming patient records, the continuously-reordered treatment queue, the
// patient lifecycle state machine, and wait-time estimation.
package triage

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Status is the lifecycle state of a patient's treatment episode.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// statusRank defines the monotonic lifecycle ordering and the primary queue
// sort key. Transitions may only move to a strictly higher rank.
var statusRank = map[Status]int{
	StatusWaiting:    1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

// Valid reports whether s is one of the closed set of lifecycle states.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank returns the lifecycle ordering rank (waiting < in-progress < completed).
func (s Status) Rank() int {
	return statusRank[s]
}

// CanTransition reports whether a move from s to target is permitted. Any
// strictly forward move is allowed, including the waiting→completed fast
// path (patient leaves without treatment).
func (s Status) CanTransition(target Status) bool {
	if !s.Valid() || !target.Valid() {
		return false
	}
	return statusRank[target] > statusRank[s]
}

// Tier is the urgency classification: 1 (Critical) through 5 (Routine),
// lower is more urgent.
type Tier int

const (
	TierCritical Tier = 1
	TierHigh     Tier = 2
	TierMedium   Tier = 3
	TierLow      Tier = 4
	TierRoutine  Tier = 5
)

// tierLabels is the canonical tier→label table. UI collaborators look this
// up instead of re-deriving display mappings.
var tierLabels = map[Tier]string{
	TierCritical: "Critical",
	TierHigh:     "High",
	TierMedium:   "Medium",
	TierLow:      "Low",
	TierRoutine:  "Routine",
}

func (t Tier) Valid() bool {
	_, ok := tierLabels[t]
	return ok
}

// Label returns the display name for the tier ("Critical" … "Routine").
func (t Tier) Label() string {
	return tierLabels[t]
}

// SymptomVector holds the nine bounded symptom severity fields, each in
// [0,10]. Fields left out of an intake request default to zero.
type SymptomVector struct {
	PainLevel           int `json:"painLevel"`
	BreathingDifficulty int `json:"breathingDifficulty"`
	ConsciousnessLevel  int `json:"consciousnessLevel"`
	Headache            int `json:"headache"`
	Confusion           int `json:"confusion"`
	ChestPain           int `json:"chestPain"`
	Palpitations        int `json:"palpitations"`
	Bleeding            int `json:"bleeding"`
	Nausea              int `json:"nausea"`
}

// Levels returns the symptom fields keyed by their wire names, for
// aggregation by collaborators.
func (s SymptomVector) Levels() map[string]int {
	return map[string]int{
		"painLevel":           s.PainLevel,
		"breathingDifficulty": s.BreathingDifficulty,
		"consciousnessLevel":  s.ConsciousnessLevel,
		"headache":            s.Headache,
		"confusion":           s.Confusion,
		"chestPain":           s.ChestPain,
		"palpitations":        s.Palpitations,
		"bleeding":            s.Bleeding,
		"nausea":              s.Nausea,
	}
}

// validate checks every symptom field against the [0,10] bound, recording
// one message per offending field.
func (s SymptomVector) validate(fields map[string]string) {
	names := []string{
		"painLevel", "breathingDifficulty", "consciousnessLevel",
		"headache", "confusion", "chestPain", "palpitations",
		"bleeding", "nausea",
	}
	levels := s.Levels()
	for _, name := range names {
		if v := levels[name]; v < 0 || v > 10 {
			fields["symptoms."+name] = fmt.Sprintf("must be between 0 and 10, got %d", v)
		}
	}
}

// Vitals holds normalized vital-sign readings. A nil field means the
// reading was absent or unparseable; it is "no data", not "normal".
type Vitals struct {
	HeartRate        *int     `json:"heartRate,omitempty"`
	BloodPressureSys *int     `json:"bloodPressureSys,omitempty"`
	BloodPressureDia *int     `json:"bloodPressureDia,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
}

// FlexString accepts a JSON string or number and stores its textual form.
// Any other JSON value decodes to the empty string rather than erroring, so
// malformed intake payloads never block triage.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' && len(b) >= 2 && b[len(b)-1] == '"' {
		*f = FlexString(b[1 : len(b)-1])
		return nil
	}
	if b[0] == '{' || b[0] == '[' || string(b) == "true" || string(b) == "false" {
		*f = ""
		return nil
	}
	*f = FlexString(b)
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strings.ReplaceAll(string(f), `"`, ``) + `"`), nil
}

// VitalsInput carries vital signs as they arrive from intake forms, where
// numeric fields may be free text or missing entirely.
type VitalsInput struct {
	HeartRate     FlexString `json:"heartRate"`
	BloodPressure FlexString `json:"bloodPressure"`
	Temperature   FlexString `json:"temperature"`
}

// PatientRecord is the unit of work in the treatment queue.
type PatientRecord struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Age              int           `json:"age"`
	Gender           string        `json:"gender"`
	Insurance        string        `json:"insurance,omitempty"`
	EmergencyContact string        `json:"emergencyContact,omitempty"`
	ChiefComplaint   string        `json:"chiefComplaint"`
	Symptoms         SymptomVector `json:"symptoms"`
	Vitals           Vitals        `json:"vitals"`

	// PriorityTier is computed once at intake and never mutated afterwards.
	PriorityTier  Tier   `json:"priority"`
	PriorityLabel string `json:"priorityLabel"`

	Status      Status    `json:"status"`
	ArrivalTime time.Time `json:"arrivalTime"`

	// EstimatedWaitMinutes is advisory and recomputed on every read; it is
	// never treated as ground truth.
	EstimatedWaitMinutes int `json:"estimatedWaitMinutes"`
}

// clone returns a copy so callers never share mutable store memory.
func (r *PatientRecord) clone() *PatientRecord {
	cp := *r
	if r.Vitals.HeartRate != nil {
		v := *r.Vitals.HeartRate
		cp.Vitals.HeartRate = &v
	}
	if r.Vitals.BloodPressureSys != nil {
		v := *r.Vitals.BloodPressureSys
		cp.Vitals.BloodPressureSys = &v
	}
	if r.Vitals.BloodPressureDia != nil {
		v := *r.Vitals.BloodPressureDia
		cp.Vitals.BloodPressureDia = &v
	}
	if r.Vitals.Temperature != nil {
		v := *r.Vitals.Temperature
		cp.Vitals.Temperature = &v
	}
	return &cp
}

// Less defines the queue's strict total order: lifecycle rank, then tier
// ascending (1 most urgent), then arrival time ascending as a stable FIFO
// tie-break.
func (r *PatientRecord) Less(other *PatientRecord) bool {
	if r.Status.Rank() != other.Status.Rank() {
		return r.Status.Rank() < other.Status.Rank()
	}
	if r.PriorityTier != other.PriorityTier {
		return r.PriorityTier < other.PriorityTier
	}
	return r.ArrivalTime.Before(other.ArrivalTime)
}

// SortRecords orders records in place under the queue's total order.
func SortRecords(records []*PatientRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Less(records[j])
	})
}
